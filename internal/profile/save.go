package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrExists는 덮어쓰기 없이 저장하려는 프로필 파일이 이미 있을 때의 sentinel error다.
var ErrExists = errors.New("프로필 파일이 이미 존재합니다")

// Save는 프로필을 dir 아래 TOML 파일로 저장하고 경로를 반환한다.
// 파일 권한은 0600, 상위 디렉토리는 0700으로 만든다.
func Save(dir string, p *Profile, overwrite bool) (string, error) {
	path := Path(dir, p.Name)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("profile.Save: %w: %s", ErrExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("profile.Save: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("profile.Save: 디렉토리 생성 실패: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file{
		Before: nonNil(p.Before),
		After:  nonNil(p.After),
	}); err != nil {
		return "", fmt.Errorf("profile.Save: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("profile.Save: %w", err)
	}
	return path, nil
}
