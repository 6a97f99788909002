package cli

import (
	"github.com/hbjs97/unlocker/internal/cmdexec"
	"github.com/hbjs97/unlocker/internal/profile"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrConfig는 설정 디렉토리 또는 프로필 파일 오류를 나타내는 sentinel error다.
	ErrConfig = profile.ErrConfig
	// ErrSpawn는 훅이나 셸 실행 파일을 시작하지 못했을 때의 sentinel error다.
	ErrSpawn = cmdexec.ErrSpawn
)
