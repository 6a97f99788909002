package cli

import (
	"fmt"

	"github.com/hbjs97/unlocker/internal/profile"
	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "설정 디렉토리의 프로필 목록을 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *App) runList(cmd *cobra.Command) error {
	dir, err := a.configDir()
	if err != nil {
		return err
	}

	names, err := profile.List(dir)
	if err != nil {
		return fmt.Errorf("cli.list: %w", err)
	}
	if len(names) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s 에 프로필이 없습니다. 'unlocker init <profile>'을 실행하세요.\n", dir)
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	return nil
}
