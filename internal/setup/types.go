package setup

// HookInput은 init 시 사용자가 입력한 훅 명령 문자열이다.
// 공백으로 나눠 argv를 만든다.
type HookInput struct {
	Before string
	After  string
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunHookForm은 before/after 명령 입력 폼을 실행한다.
	RunHookForm(profileName string) (*HookInput, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
