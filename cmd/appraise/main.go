// appraise оценивает номера машин или хвосты телефонов из командной строки.
//
//	appraise plate [--min-stars N] <plates...>
//	appraise tail [--min-grade S|A|B|C|D] <numbers...>
//
// Без аргументов ввод читается из stdin, по одному на строку. Отклонённый
// ввод выводится с причиной и пропускается.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"plate_appraiser/internal/config"
	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/service/appraisal"
	"plate_appraiser/internal/domain/service/phone"
	"plate_appraiser/internal/domain/service/plate"
	"plate_appraiser/pkg/logx"
)

const (
	modePlate = "plate"
	modeTail  = "tail"

	maxStars = 5
)

var errUsage = errors.New("usage: appraise plate [--min-stars N] <plates...> | appraise tail [--min-grade G] <numbers...>")

func main() {
	log := slog.New(logx.NewHandler(os.Stderr, slog.LevelWarn))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	svc, err := newService(cfg.Valuation)
	if err != nil {
		log.Error("newService", logx.Error(err))
		os.Exit(1)
	}

	if err = newRootCmd(svc).ExecuteContext(context.Background()); err != nil {
		log.Error("appraise", logx.Error(err))
		os.Exit(2) //nolint:gomnd
	}
}

func newService(cfg config.Valuation) (*appraisal.Service, error) {
	plates, err := plate.NewEngine(cfg.PlateProfile())
	if err != nil {
		return nil, fmt.Errorf("plate.NewEngine: %w", err)
	}

	profile, err := phone.ProfileByName(cfg.PhoneProfile)
	if err != nil {
		return nil, fmt.Errorf("phone.ProfileByName: %w", err)
	}

	return appraisal.NewService(plates, phone.NewEngine(profile)), nil
}

type options struct {
	mode     string
	minStars int
	minGrade entity.Grade
	inputs   []string
}

func newRootCmd(svc *appraisal.Service) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "appraise",
		Short:         "Value license plates and phone tails",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return errUsage
		},
	}

	var minStars int

	plateCmd := &cobra.Command{
		Use:   "plate [plates...]",
		Short: "Value license plates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minStars < 0 || minStars > maxStars {
				return fmt.Errorf("min-stars %d out of range 0-%d: %w", minStars, maxStars, errUsage)
			}

			opts := options{mode: modePlate, minStars: minStars, inputs: args}

			return run(cmd.Context(), svc, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	plateCmd.Flags().IntVar(&minStars, "min-stars", 0, "Hide plates rated below N stars (0-5)")

	var minGrade string

	tailCmd := &cobra.Command{
		Use:   "tail [numbers...]",
		Short: "Value phone number tails",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options{mode: modeTail, inputs: args}

			if minGrade != "" {
				opts.minGrade = entity.Grade(strings.ToUpper(minGrade))
				if opts.minGrade.Rank() == 0 {
					return fmt.Errorf("min-grade %q is not one of S, A, B, C, D: %w", minGrade, errUsage)
				}
			}

			return run(cmd.Context(), svc, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	tailCmd.Flags().StringVar(&minGrade, "min-grade", "", "Hide tails graded below G (S, A, B, C, D)")

	rootCmd.AddCommand(plateCmd, tailCmd)

	return rootCmd
}

func run(ctx context.Context, svc *appraisal.Service, opts options, in io.Reader, out io.Writer) error {
	if len(opts.inputs) == 0 {
		lines, err := readLines(in)
		if err != nil {
			return err
		}
		opts.inputs = lines
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) //nolint:gomnd
	defer w.Flush()

	for _, raw := range opts.inputs {
		line, err := appraiseOne(ctx, svc, opts, raw)
		if err != nil {
			return err
		}
		if line != "" {
			fmt.Fprintln(w, line)
		}
	}

	return nil
}

// appraiseOne возвращает строку вывода для raw или "", если она отфильтрована.
func appraiseOne(ctx context.Context, svc *appraisal.Service, opts options, raw string) (string, error) {
	if opts.mode == modePlate {
		report, err := svc.ValuatePlate(ctx, raw)
		if err != nil {
			return rejected(raw, err)
		}
		if report.Stars < opts.minStars {
			return "", nil
		}

		return fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%s",
			report.Plate, report.Value, report.Level, strings.Repeat("★", report.Stars),
			report.Location, strings.Join(report.Factors, "、")), nil
	}

	v, err := svc.ValuateTail(ctx, raw)
	if err != nil {
		return rejected(raw, err)
	}
	if v.Grade.Rank() < opts.minGrade.Rank() {
		return "", nil
	}

	return fmt.Sprintf("%s\t%s\t%s\t%d\t%s", v.TailNumber, v.Grade, v.Pattern, v.Price, v.Description), nil
}

// rejected выводит невалидный ввод строкой; любая другая ошибка прерывает запуск.
func rejected(raw string, err error) (string, error) {
	if failure.IsInvalidArgumentError(err) {
		return fmt.Sprintf("%s\t-\t%s", raw, failure.Description(err)), nil
	}

	return "", fmt.Errorf("appraise %q: %w", raw, err)
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err: %w", err)
	}

	return lo.Compact(lo.Map(lines, func(l string, _ int) string { return strings.TrimSpace(l) })), nil
}
