package setup

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hbjs97/unlocker/internal/profile"
)

// ErrCanceled는 사용자가 덮어쓰기를 거절했을 때의 sentinel error다.
var ErrCanceled = errors.New("취소되었습니다")

var profileNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidateName은 init으로 만들 프로필 이름을 검사한다.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("setup.ValidateName: 프로필 이름을 입력하세요")
	}
	if !profileNameRegex.MatchString(name) {
		return fmt.Errorf("setup.ValidateName: %q: 영문, 숫자, '_', '-'만 사용 가능합니다", name)
	}
	return nil
}

// SplitCommand는 명령 문자열을 공백 기준으로 argv로 나눈다.
// 따옴표는 해석하지 않는다.
func SplitCommand(s string) []string {
	return strings.Fields(s)
}

// Runner는 unlocker init의 진입점이다.
type Runner struct {
	Dir        string
	FormRunner FormRunner
	// Interactive가 false면 폼을 띄우지 않는다.
	Interactive bool
}

// Run은 프로필 파일을 만든다. input이 nil이면 폼으로 입력받는다.
func (r *Runner) Run(name string, input *HookInput, force bool) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	if input == nil {
		if !r.Interactive {
			return "", fmt.Errorf("setup.Run: 터미널이 아니면 --before/--after를 지정하세요")
		}
		in, err := r.FormRunner.RunHookForm(name)
		if err != nil {
			return "", err
		}
		input = in
	}

	p := &profile.Profile{
		Name:   name,
		Before: SplitCommand(input.Before),
		After:  SplitCommand(input.After),
	}

	path, err := profile.Save(r.Dir, p, force)
	if errors.Is(err, profile.ErrExists) && r.Interactive {
		ok, cerr := r.FormRunner.RunConfirm(fmt.Sprintf("%s 프로필이 이미 있습니다. 덮어쓸까요?", name))
		if cerr != nil {
			return "", cerr
		}
		if !ok {
			return "", ErrCanceled
		}
		return profile.Save(r.Dir, p, true)
	}
	return path, err
}
