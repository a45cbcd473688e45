package server

import (
	"context"
	"fmt"
	"net/http"

	"plate_appraiser/internal/domain/service/appraisal"
	"plate_appraiser/internal/domain/service/keypad"
	"plate_appraiser/pkg/httpx/reply"
	"plate_appraiser/pkg/httpx/req"
	"plate_appraiser/pkg/rest"
)

type keypadService interface {
	Keypad(ctx context.Context, action appraisal.KeypadAction, in appraisal.KeypadInput) (appraisal.KeypadResult, error)
}

type KeypadServer struct {
	keypadService keypadService
}

func NewKeypadServer(keypadService keypadService) KeypadServer {
	return KeypadServer{
		keypadService: keypadService,
	}
}

// getV1Keypad отдаёт пустую клавиатуру, с которой клиент начинает ввод.
func (s KeypadServer) getV1Keypad(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTKeypadState(keypad.New()))

	return nil
}

func (s KeypadServer) postV1Keypad(action appraisal.KeypadAction) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		ctx := r.Context()

		var request rest.KeypadRequest

		if err := req.Read(r, &request); err != nil {
			return fmt.Errorf("req.Read: %w", err)
		}

		result, err := s.keypadService.Keypad(ctx, action, newDomainKeypadInput(request))
		if err != nil {
			return fmt.Errorf("keypadService.Keypad: %w", err)
		}

		reply.JSON(ctx, w, http.StatusOK, newRESTKeypadResult(result))

		return nil
	}
}
