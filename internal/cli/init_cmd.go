package cli

import (
	"fmt"

	"github.com/hbjs97/unlocker/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var before, after string
	var force bool

	cmd := &cobra.Command{
		Use:   "init <profile>",
		Short: "프로필 파일을 만든다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input *setup.HookInput
			if cmd.Flags().Changed("before") || cmd.Flags().Changed("after") {
				input = &setup.HookInput{Before: before, After: after}
			}
			return a.runInit(cmd, args[0], input, force)
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "셸 시작 전 명령 (공백으로 구분)")
	cmd.Flags().StringVar(&after, "after", "", "셸 종료 후 명령 (공백으로 구분)")
	cmd.Flags().BoolVar(&force, "force", false, "기존 프로필 덮어쓰기")
	return cmd
}

func (a *App) runInit(cmd *cobra.Command, name string, input *setup.HookInput, force bool) error {
	dir, err := a.configDir()
	if err != nil {
		return err
	}

	r := &setup.Runner{
		Dir:         dir,
		FormRunner:  a.FormRunner,
		Interactive: a.IsTerminal != nil && a.IsTerminal(),
	}
	path, err := r.Run(name, input, force)
	if err != nil {
		return fmt.Errorf("cli.init: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "프로필이 저장되었습니다: %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "unlocker doctor %s 로 확인하세요.\n", name)
	return nil
}
