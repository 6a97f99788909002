package cli

import (
	"errors"
)

// ExitCode는 unlocker의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다. 훅이 0이 아닌 코드로 끝난 경우도 포함한다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다 (잘못된 인자 등).
	ExitGeneral ExitCode = 1
	// ExitConfigError는 설정 디렉토리/프로필 파일 오류다.
	ExitConfigError ExitCode = 2
	// ExitSpawnFail는 훅 또는 셸 실행 파일을 시작하지 못한 경우다.
	ExitSpawnFail ExitCode = 3
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrSpawn):
		return ExitSpawnFail
	default:
		return ExitGeneral
	}
}
