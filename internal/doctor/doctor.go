package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hbjs97/unlocker/internal/cmdexec"
	"github.com/hbjs97/unlocker/internal/hook"
	"github.com/hbjs97/unlocker/internal/profile"
	"github.com/hbjs97/unlocker/internal/shell"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckConfigDir는 프로필 디렉토리 존재 여부를 확인한다.
func CheckConfigDir(dir string) DiagResult {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return DiagResult{
			Name:    "config_dir",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음", dir),
			Fix:     "unlocker init <profile> 실행",
		}
	case err != nil:
		return DiagResult{
			Name:    "config_dir",
			Status:  StatusFail,
			Message: err.Error(),
		}
	case !info.IsDir():
		return DiagResult{
			Name:    "config_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 는 디렉토리가 아님", dir),
		}
	}
	return DiagResult{
		Name:    "config_dir",
		Status:  StatusOK,
		Message: dir,
	}
}

// CheckShell은 세션 셸 실행 파일을 찾을 수 있는지 확인한다.
func CheckShell(cmd cmdexec.Commander, shellPath string) DiagResult {
	if _, err := cmd.LookPath(shellPath); err != nil {
		return DiagResult{
			Name:    "shell",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", shellPath),
			Fix:     fmt.Sprintf("SHELL 환경변수 확인 (기본값 %s)", shell.DefaultShell),
		}
	}
	return DiagResult{
		Name:    "shell",
		Status:  StatusOK,
		Message: shellPath,
	}
}

// CheckProfile은 프로필을 로드하고 각 훅의 실행 파일을 확인한다.
// 로드에 실패하면 훅 검사는 하지 않는다.
func CheckProfile(cmd cmdexec.Commander, loader *profile.Loader, name string) []DiagResult {
	p, err := loader.Load(name)
	if err != nil {
		return []DiagResult{{
			Name:    name,
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "before/after 두 필드만 있는 TOML인지 확인",
		}}
	}

	results := []DiagResult{{
		Name:    name,
		Status:  StatusOK,
		Message: "프로필 로드 성공",
	}}
	results = append(results, checkHook(cmd, name, hook.PhaseBefore, p.Before))
	results = append(results, checkHook(cmd, name, hook.PhaseAfter, p.After))
	return results
}

func checkHook(cmd cmdexec.Commander, name string, phase hook.Phase, argv []string) DiagResult {
	diagName := fmt.Sprintf("%s.%s", name, phase)
	if len(argv) == 0 {
		return DiagResult{
			Name:    diagName,
			Status:  StatusOK,
			Message: "훅 없음",
		}
	}
	path, err := cmd.LookPath(argv[0])
	if err != nil {
		return DiagResult{
			Name:    diagName,
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", argv[0]),
			Fix:     fmt.Sprintf("%s 설치 또는 PATH 확인", argv[0]),
		}
	}
	return DiagResult{
		Name:    diagName,
		Status:  StatusOK,
		Message: path,
	}
}

// RunAll은 모든 진단을 실행한다. names가 비어 있으면 dir의 모든 프로필을 검사한다.
func RunAll(cmd cmdexec.Commander, dir, shellPath string, names []string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckConfigDir(dir))
	results = append(results, CheckShell(cmd, shellPath))

	if len(names) == 0 {
		listed, err := profile.List(dir)
		if err != nil {
			return append(results, DiagResult{
				Name:    "profiles",
				Status:  StatusFail,
				Message: err.Error(),
			})
		}
		names = listed
	}

	loader := &profile.Loader{Dir: dir}
	for _, name := range names {
		results = append(results, CheckProfile(cmd, loader, name)...)
	}
	return results
}
