package strategy

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses one compact strategy spec. Accepted forms:
//
//	name:workers,chunk,backend
//	workers,chunk
//
// The backend token is one of process, thread, serial and defaults to
// process. The name defaults to a generated label.
func Parse(s string) (Config, error) {
	spec := strings.TrimSpace(s)
	if spec == "" {
		return Config{}, fmt.Errorf("empty strategy spec")
	}

	name := ""
	fields := spec
	if idx := strings.Index(spec, ":"); idx >= 0 {
		name = strings.TrimSpace(spec[:idx])
		fields = spec[idx+1:]
	}

	parts := strings.Split(fields, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return Config{}, fmt.Errorf("invalid strategy spec %q: want workers,chunk[,backend]", s)
	}

	workers, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Config{}, fmt.Errorf("invalid worker count in %q: %w", s, err)
	}
	chunk, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Config{}, fmt.Errorf("invalid chunk size in %q: %w", s, err)
	}

	backend := BackendProcess
	if len(parts) == 3 {
		backend, err = parseBackend(strings.TrimSpace(parts[2]))
		if err != nil {
			return Config{}, fmt.Errorf("invalid strategy spec %q: %w", s, err)
		}
	}

	cfg, err := New(name, workers, chunk, backend)
	if err != nil {
		return Config{}, fmt.Errorf("invalid strategy spec %q: %w", s, err)
	}
	return cfg, nil
}

// ParseList parses a list of compact specs, failing on the first bad one.
func ParseList(specs []string) ([]Config, error) {
	configs := make([]Config, 0, len(specs))
	for _, s := range specs {
		cfg, err := Parse(s)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func parseBackend(s string) (Backend, error) {
	switch s {
	case "process":
		return BackendProcess, nil
	case "thread":
		return BackendThread, nil
	case "serial":
		return BackendSequential, nil
	}
	return "", fmt.Errorf("unknown backend %q", s)
}
