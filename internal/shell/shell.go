package shell

import (
	"strings"
)

const (
	// DefaultShell는 SHELL이 비어 있을 때 사용하는 셸이다.
	DefaultShell = "/bin/bash"
	// EnvProfiles는 세션 셸에 내보내는 활성 프로필 목록 환경변수다.
	EnvProfiles = "UNLOCKER_PROFILES"
)

// Resolve는 SHELL 환경변수를 읽어 셸 경로를 반환한다.
func Resolve(getenv func(string) string) string {
	if s := strings.TrimSpace(getenv("SHELL")); s != "" {
		return s
	}
	return DefaultShell
}

// SessionEnv는 세션 셸에 추가할 환경변수를 만든다.
func SessionEnv(profileNames []string) map[string]string {
	return map[string]string{
		EnvProfiles: strings.Join(profileNames, ","),
	}
}

// Outer는 이미 unlocker 세션 안에서 실행 중이면 바깥 세션의 프로필 목록을 반환한다.
func Outer(getenv func(string) string) (string, bool) {
	v := getenv(EnvProfiles)
	return v, v != ""
}
