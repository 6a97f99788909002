package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// AppDirName은 사용자 설정 디렉토리 아래 unlocker 전용 하위 디렉토리 이름이다.
const AppDirName = "unlocker"

// Ext는 프로필 파일 확장자다.
const Ext = ".toml"

var (
	// ErrConfig는 모든 설정 오류의 상위 sentinel error다.
	ErrConfig = errors.New("설정 오류")
	// ErrNoConfigDir는 플랫폼에 사용자 설정 디렉토리가 없을 때의 sentinel error다.
	ErrNoConfigDir = fmt.Errorf("%w: 사용자 설정 디렉토리를 찾을 수 없습니다", ErrConfig)
	// ErrNotFound는 프로필 파일이 없을 때의 sentinel error다.
	ErrNotFound = fmt.Errorf("%w: 프로필 파일이 없습니다", ErrConfig)
	// ErrUnreadable는 프로필 파일을 읽을 수 없을 때의 sentinel error다.
	ErrUnreadable = fmt.Errorf("%w: 프로필 파일을 읽을 수 없습니다", ErrConfig)
	// ErrInvalid는 프로필 파일 내용이 스키마에 맞지 않을 때의 sentinel error다.
	ErrInvalid = fmt.Errorf("%w: 프로필 형식 오류", ErrConfig)
)

// Profile은 하나의 세션 훅 프로필이다. 로드 이후 변경하지 않는다.
type Profile struct {
	// Name은 호출자가 넘긴 인자 그대로다. 진단 메시지에만 쓴다.
	Name   string
	Before []string
	After  []string
}

// file은 프로필 TOML 문서의 닫힌 스키마다.
type file struct {
	Before []string `toml:"before"`
	After  []string `toml:"after"`
}

// Dir는 os.UserConfigDir 아래 unlocker 디렉토리 경로를 반환한다.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", fmt.Errorf("profile.Dir: %w", ErrNoConfigDir)
	}
	return filepath.Join(base, AppDirName), nil
}

// Path는 프로필 이름의 확장자를 .toml로 바꿔 dir 아래 경로를 만든다.
// "work" -> work.toml, "work.yaml" -> work.toml, ".hidden" -> .hidden.toml, "work/" -> work.toml
func Path(dir, name string) string {
	if name != "" {
		name = filepath.Clean(name)
	}
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := name
	if ext != "" && ext != base {
		stem = strings.TrimSuffix(name, ext)
	}
	return filepath.Join(dir, stem+Ext)
}

// Loader는 설정 디렉토리에서 프로필을 읽는다. 캐시하지 않는다.
type Loader struct {
	// Dir가 비어있으면 Load 시점에 Dir()로 결정한다.
	Dir string
}

// Load는 name에 해당하는 프로필 파일을 읽고 엄격하게 파싱한다.
func (l *Loader) Load(name string) (*Profile, error) {
	dir := l.Dir
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return nil, fmt.Errorf("profile.Load(%s): %w", name, err)
		}
		dir = d
	}

	path := Path(dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("profile.Load(%s): %w: %s", name, ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("profile.Load(%s): %w: %w", name, ErrUnreadable, err)
	}

	p, err := Parse(name, string(data))
	if err != nil {
		return nil, fmt.Errorf("profile.Load(%s): %s: %w", name, path, err)
	}
	return p, nil
}

// Parse는 TOML 문서를 Profile로 변환한다.
// before/after 두 필드가 모두 있어야 하고 다른 키는 허용하지 않는다.
func Parse(name, text string) (*Profile, error) {
	var f file
	md, err := toml.Decode(text, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	// 디코더는 필드 이름을 대소문자 구분 없이 맞추므로 키 이름을 직접 비교한다.
	var unknown []string
	for _, k := range md.Keys() {
		if key := k.String(); key != "before" && key != "after" {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: 알 수 없는 필드 %s", ErrInvalid, strings.Join(unknown, ", "))
	}
	for _, key := range []string{"before", "after"} {
		if !md.IsDefined(key) {
			return nil, fmt.Errorf("%w: %s 필수", ErrInvalid, key)
		}
	}

	return &Profile{
		Name:   name,
		Before: nonNil(f.Before),
		After:  nonNil(f.After),
	}, nil
}

// List는 dir 안의 프로필 이름(.toml 파일의 stem)을 정렬해 반환한다.
// dir가 없으면 빈 목록이다.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile.List: %w: %w", ErrUnreadable, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(names)
	return names, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
