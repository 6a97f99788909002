// Package session sequences the load, before, shell and after phases of an
// unlocker run across an ordered list of profiles.
package session

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/unlocker/internal/cmdexec"
	"github.com/hbjs97/unlocker/internal/hook"
	"github.com/hbjs97/unlocker/internal/profile"
	"github.com/hbjs97/unlocker/internal/shell"
)

// State는 세션 실행이 끝난 지점이다.
type State string

const (
	// StateAborted는 프로필 로드 실패로 아무 명령도 실행하지 않은 상태다.
	StateAborted State = "aborted"
	// StateBeforeFailed는 before 훅 실패로 셸과 after 훅을 건너뛴 상태다.
	StateBeforeFailed State = "before_failed"
	// StateShellFailed는 셸을 시작하지 못해 after 훅을 건너뛴 상태다.
	StateShellFailed State = "shell_failed"
	// StateAfterFailed는 after 훅 실패로 나머지 after 훅을 건너뛴 상태다.
	StateAfterFailed State = "after_failed"
	// StateDone은 모든 단계가 끝난 상태다.
	StateDone State = "done"
)

// Result는 세션 실행 결과다.
type Result struct {
	State State
	// Profile은 BeforeFailed/AfterFailed일 때 실패한 프로필 이름이다.
	Profile string
	// ExitCode는 실패한 훅의 종료 코드다.
	ExitCode int
}

// Loader는 프로필 이름을 Profile로 바꾼다.
type Loader interface {
	Load(name string) (*profile.Profile, error)
}

// Orchestrator는 프로필 목록의 훅과 셸을 순서대로 실행한다.
// 모든 명령은 순차적으로 실행되며 동시에 두 개가 돌지 않는다.
type Orchestrator struct {
	Loader    Loader
	Commander cmdexec.Commander
	Logger    *log.Logger
	// Shell은 시작 시점에 한 번 결정된 셸 경로다.
	Shell string
}

// Run은 names 순서대로 프로필을 모두 로드한 뒤 before 훅, 셸, after 훅을 실행한다.
//
// 로드 실패와 실행 자체가 불가능한 명령(cmdexec.ErrSpawn)만 에러로 반환한다.
// 훅이 0이 아닌 코드로 끝나면 로그를 남기고 Result.State로 알린 뒤 nil 에러를 반환한다.
// before 훅 실패 시 after 훅은 어느 프로필에서도 실행하지 않는다.
func (o *Orchestrator) Run(ctx context.Context, names []string) (Result, error) {
	profiles := make([]*profile.Profile, 0, len(names))
	for _, name := range names {
		p, err := o.Loader.Load(name)
		if err != nil {
			return Result{State: StateAborted}, fmt.Errorf("session.Run: %w", err)
		}
		profiles = append(profiles, p)
	}

	hooks := &hook.Runner{Commander: o.Commander, Logger: o.Logger}

	for _, p := range profiles {
		out, err := hooks.Run(ctx, hook.PhaseBefore, p.Name, p.Before)
		if err != nil {
			return Result{State: StateBeforeFailed, Profile: p.Name}, fmt.Errorf("session.Run: %w", err)
		}
		if !out.Success() {
			o.Logger.Error("before 훅 실패, 셸과 after 훅을 건너뜁니다", "profile", p.Name, "exit", out.ExitCode)
			return Result{State: StateBeforeFailed, Profile: p.Name, ExitCode: out.ExitCode}, nil
		}
	}

	o.Logger.Info("[shell]", "cmd", o.Shell)
	if _, err := o.Commander.Interactive(ctx, shell.SessionEnv(names), o.Shell); err != nil {
		return Result{State: StateShellFailed}, fmt.Errorf("session.Run: 셸 실행 실패: %w", err)
	}

	for _, p := range profiles {
		out, err := hooks.Run(ctx, hook.PhaseAfter, p.Name, p.After)
		if err != nil {
			return Result{State: StateAfterFailed, Profile: p.Name}, fmt.Errorf("session.Run: %w", err)
		}
		if !out.Success() {
			o.Logger.Error("after 훅 실패, 남은 after 훅을 건너뜁니다", "profile", p.Name, "exit", out.ExitCode)
			return Result{State: StateAfterFailed, Profile: p.Name, ExitCode: out.ExitCode}, nil
		}
	}

	return Result{State: StateDone}, nil
}
