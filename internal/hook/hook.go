// Package hook runs a single before/after command list of a profile.
package hook

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/unlocker/internal/cmdexec"
)

// Phase는 훅이 속한 세션 단계다.
type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseAfter  Phase = "after"
)

// Runner는 Commander로 훅 하나를 실행한다.
type Runner struct {
	Commander cmdexec.Commander
	Logger    *log.Logger
}

// Run은 argv를 대화형으로 실행한다. argv가 비어 있으면 아무것도 실행하지
// 않고 성공을 반환한다. 0이 아닌 종료 코드는 에러가 아니라 Outcome으로 돌려준다.
func (r *Runner) Run(ctx context.Context, phase Phase, profileName string, argv []string) (cmdexec.Outcome, error) {
	if len(argv) == 0 {
		return cmdexec.Outcome{}, nil
	}

	r.Logger.Info(fmt.Sprintf("[%s]", phase), "profile", profileName, "cmd", strings.Join(argv, " "))

	out, err := r.Commander.Interactive(ctx, nil, argv[0], argv[1:]...)
	if err != nil {
		return out, fmt.Errorf("hook.Run(%s %s): %w", profileName, phase, err)
	}
	return out, nil
}
