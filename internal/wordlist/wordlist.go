// Package wordlist loads word pools from files.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadPools reads pools from the provided file path. Pools are separated by
// blank lines; each non-comment line holds one or more words separated by
// whitespace. Lines starting with '#' are ignored.
func LoadPools(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only pools file.
			_ = cerr
		}
	}()
	return ReadPools(file)
}

// ReadPools parses pools from r using the LoadPools format.
func ReadPools(r io.Reader) ([][]string, error) {
	var pools [][]string
	var current []string
	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		if err := ValidatePool(current, Typeable); err != nil {
			return fmt.Errorf("pool %d: %w", len(pools)+1, err)
		}
		pools = append(pools, current)
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		current = append(current, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(pools) == 0 {
		return nil, fmt.Errorf("pools file is empty")
	}
	return pools, nil
}

// Resolve returns the pools from path, or the built-in pools when path is empty.
func Resolve(path string) ([][]string, error) {
	if path == "" {
		return Builtin(), nil
	}
	pools, err := LoadPools(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load pools from %s: %w", path, err)
	}
	return pools, nil
}
