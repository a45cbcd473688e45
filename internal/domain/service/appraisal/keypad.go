package appraisal

import (
	"context"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/service/keypad"
	"plate_appraiser/pkg/errcodes"
)

type KeypadAction string

const (
	KeypadPress   KeypadAction = "press"
	KeypadDelete  KeypadAction = "delete"
	KeypadConfirm KeypadAction = "confirm"
	KeypadFocus   KeypadAction = "focus"
	KeypadSkip    KeypadAction = "skip"
)

type KeypadInput struct {
	State keypad.State
	Key   string
	Index int
}

type KeypadResult struct {
	State keypad.State
	Plate string

	// Valuation заполняется после подтверждения полного номера.
	Valuation *entity.PlateReport
}

// Keypad применяет одно действие клавиатуры. Подтверждение полного номера запускает оценку.
func (s *Service) Keypad(ctx context.Context, action KeypadAction, in KeypadInput) (KeypadResult, error) {
	if err := keypad.Validate(in.State); err != nil {
		return KeypadResult{}, invalidKeypad(err)
	}

	var (
		next = in.State
		err  error
	)

	switch action {
	case KeypadPress:
		next, err = keypad.Press(in.State, in.Key)
	case KeypadDelete:
		next = keypad.Delete(in.State)
	case KeypadFocus:
		next, err = keypad.Focus(in.State, in.Index)
	case KeypadSkip:
		next = keypad.SkipEnergy(in.State)
	case KeypadConfirm:
		st, p, ok := keypad.Confirm(in.State)
		if !ok {
			return KeypadResult{State: st}, failure.NewInvalidArgumentError(
				"plate is incomplete",
				failure.WithCode(errcodes.IncompletePlate),
				failure.WithDescription("请填写完整的车牌号"),
			)
		}

		report, err := s.ValuatePlate(ctx, p)
		if err != nil {
			return KeypadResult{State: st, Plate: p}, fmt.Errorf("ValuatePlate: %w", err)
		}

		return KeypadResult{State: st, Plate: p, Valuation: &report}, nil
	default:
		return KeypadResult{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown keypad action %q", action),
			failure.WithCode(errcodes.ValidationError),
		)
	}

	if err != nil {
		return KeypadResult{State: in.State}, invalidKeypad(err)
	}

	p, _ := keypad.Plate(next)

	return KeypadResult{State: next, Plate: p}, nil
}

func invalidKeypad(err error) error {
	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(errcodes.InvalidKeypadState),
		failure.WithDescription(err.Error()),
	)
}
