package predicates

import (
	"os"

	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
	"github.com/fsvxavier/govalid/types"
)

// IsFile accepts a string path to an existing regular file.
func IsFile() schema.NamedCallable {
	return schema.WithName("IsFile()", func(value interface{}) (interface{}, error) {
		path, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, errors.New("File does not exist", "IsFile()", types.Str(path), nil, nil)
		}
		return value, nil
	})
}

// IsDir accepts a string path to an existing directory.
func IsDir() schema.NamedCallable {
	return schema.WithName("IsDir()", func(value interface{}) (interface{}, error) {
		path, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return nil, errors.New("Directory does not exist", "IsDir()", types.Str(path), nil, nil)
		}
		return value, nil
	})
}

// PathExists accepts a string path to anything that exists on disk.
func PathExists() schema.NamedCallable {
	return schema.WithName("PathExists()", func(value interface{}) (interface{}, error) {
		path, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.New("Path does not exist", "PathExists()", types.Str(path), nil, nil)
		}
		return value, nil
	})
}
