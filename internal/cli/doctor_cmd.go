package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/unlocker/internal/doctor"
	"github.com/hbjs97/unlocker/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [profile...]",
		Short: "프로필과 셸 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.OutOrStdout(), args)
		},
	}
}

func (a *App) runDoctor(w io.Writer, names []string) error {
	dir, err := a.configDir()
	if err != nil {
		return fmt.Errorf("cli.doctor: %w", err)
	}

	results := doctor.RunAll(a.Commander, dir, shell.Resolve(a.Getenv), names)
	printDiagResults(w, results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(w, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
