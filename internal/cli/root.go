package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/unlocker/internal/cmdexec"
	"github.com/hbjs97/unlocker/internal/profile"
	"github.com/hbjs97/unlocker/internal/session"
	"github.com/hbjs97/unlocker/internal/setup"
	"github.com/hbjs97/unlocker/internal/shell"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// EnvLogLevel은 로그 레벨을 지정하는 환경변수다.
const EnvLogLevel = "UNLOCKER_LOG"

// App은 CLI 명령이 공유하는 외부 의존성이다.
type App struct {
	Commander  cmdexec.Commander
	FormRunner setup.FormRunner
	// ConfigDir가 비어있으면 profile.Dir()를 사용한다.
	ConfigDir string
	Getenv    func(string) string
	// Stderr는 로그 출력 대상이다.
	Stderr io.Writer
	// IsTerminal은 init 폼을 띄울 수 있는지 판단한다.
	IsTerminal func() bool
}

// NewApp은 실제 프로세스 환경에 연결된 App을 만든다.
func NewApp() *App {
	return &App{
		Commander:  &cmdexec.RealCommander{},
		FormRunner: &setup.HuhFormRunner{},
		Getenv:     os.Getenv,
		Stderr:     os.Stderr,
		IsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// NewRootCmd는 unlocker CLI의 루트 명령을 생성한다.
// 루트 명령 자체가 세션 실행이며 인자는 모두 프로필 이름이다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlocker <profile> [profile...]",
		Short: "셸 세션 앞뒤로 프로필 훅을 실행한다",
		Long: strings.TrimSpace(`
각 프로필의 before 명령을 인자 순서대로 실행한 뒤 $SHELL을 띄우고,
셸이 끝나면 after 명령을 같은 순서로 실행한다.

프로필 파일: <사용자 설정 디렉토리>/unlocker/<profile>.toml
  before = ["cmd", "arg", ...]
  after  = ["cmd", "arg", ...]

list, doctor, init, help는 하위 명령이므로 같은 이름의 프로필은 실행할 수 없다.
`),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSession(cmd.Context(), args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		a.newListCmd(),
		a.newDoctorCmd(),
		a.newInitCmd(),
	)
	return cmd
}

func (a *App) runSession(ctx context.Context, names []string) error {
	logger := a.logger()

	dir, err := a.configDir()
	if err != nil {
		return err
	}

	if outer, ok := shell.Outer(a.Getenv); ok {
		logger.Warn("이미 unlocker 세션 안에서 실행 중입니다", "outer", outer)
	}

	o := &session.Orchestrator{
		Loader:    &profile.Loader{Dir: dir},
		Commander: a.Commander,
		Logger:    logger,
		Shell:     shell.Resolve(a.Getenv),
	}
	res, err := o.Run(ctx, names)
	if err != nil {
		return fmt.Errorf("cli.run: %w", err)
	}
	logger.Debug("세션 종료", "state", res.State)
	return nil
}

func (a *App) configDir() (string, error) {
	if a.ConfigDir != "" {
		return a.ConfigDir, nil
	}
	return profile.Dir()
}

// logger는 UNLOCKER_LOG 레벨로 Stderr에 쓰는 logger를 만든다.
func (a *App) logger() *log.Logger {
	logger := log.NewWithOptions(a.Stderr, log.Options{Prefix: "unlocker"})

	raw := strings.TrimSpace(a.Getenv(EnvLogLevel))
	if raw == "" {
		return logger
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		logger.Warn("알 수 없는 로그 레벨, info 사용", "value", raw)
		return logger
	}
	logger.SetLevel(level)
	return logger
}
