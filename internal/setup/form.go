package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunHookForm은 before/after 명령 입력 폼을 실행한다.
func (h *HuhFormRunner) RunHookForm(profileName string) (*HookInput, error) {
	input := &HookInput{}

	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(fmt.Sprintf("프로필 %s", profileName)).
			Description("비워두면 해당 단계에서 아무것도 실행하지 않습니다"),
		huh.NewInput().
			Title("before 명령").
			Description("셸 시작 전에 실행 (예: pass unlock)").
			Value(&input.Before),
		huh.NewInput().
			Title("after 명령").
			Description("셸 종료 후 실행 (예: pass lock)").
			Value(&input.After),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunHookForm: %w", err)
	}
	return input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
