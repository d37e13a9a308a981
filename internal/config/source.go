package config

import "os"

// Source yields the current configuration. Dev servers call Load on every
// request so edits to xilo.yaml show up without a restart.
type Source interface {
	Load() (Config, error)
}

type FileSource struct {
	Path   string
	Lookup func(string) (string, bool)
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path, Lookup: os.LookupEnv}
}

func (s *FileSource) Load() (Config, error) {
	cfg, err := Load(s.Path)
	if err != nil {
		return Config{}, err
	}
	if s.Lookup != nil {
		cfg.ApplyEnv(s.Lookup)
	}
	return cfg, nil
}

// StaticSource always returns the same configuration.
type StaticSource struct {
	Config Config
}

func (s StaticSource) Load() (Config, error) {
	return s.Config, nil
}
