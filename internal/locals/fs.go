// Package locals builds the values injected into a session's scope besides
// the caller's own: the fs namespace and module files loaded from disk.
package locals

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"apprepl/pkg/repltypes"
)

// FSName is the scope name of the filesystem namespace.
const FSName = "fs"

// FS returns the filesystem namespace backed by fs:
//
//	fs.ls [dir]            directory listing, directories end with "/"
//	fs.cat <path>          file contents
//	fs.exists <path>       whether path exists
//	fs.stat <path>         name, size, mode, modification time
//	fs.write <path> <text> replace a file's contents
//	fs.mkdir <path>        create a directory and its parents
//	fs.rm <path>           remove a file or directory tree
func FS(fs afero.Fs) repltypes.Namespace {
	f := fsCommands{fs: fs}
	return repltypes.Namespace{
		"ls":     repltypes.Command(f.ls),
		"cat":    repltypes.Command(f.cat),
		"exists": repltypes.Command(f.exists),
		"stat":   repltypes.Command(f.stat),
		"write":  repltypes.Command(f.write),
		"mkdir":  repltypes.Command(f.mkdir),
		"rm":     repltypes.Command(f.rm),
	}
}

type fsCommands struct {
	fs afero.Fs
}

func (f fsCommands) ls(_ context.Context, call repltypes.Call) repltypes.Outcome {
	dir := "."
	if len(call.Args) > 0 {
		dir = call.Args[0]
	}
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return repltypes.Failed(err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return repltypes.Immediate(names)
}

func (f fsCommands) cat(_ context.Context, call repltypes.Call) repltypes.Outcome {
	path, err := onePath("cat", call)
	if err != nil {
		return repltypes.Failed(err)
	}
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return repltypes.Failed(err)
	}
	return repltypes.Immediate(string(data))
}

func (f fsCommands) exists(_ context.Context, call repltypes.Call) repltypes.Outcome {
	path, err := onePath("exists", call)
	if err != nil {
		return repltypes.Failed(err)
	}
	return repltypes.FromResult(afero.Exists(f.fs, path))
}

func (f fsCommands) stat(_ context.Context, call repltypes.Call) repltypes.Outcome {
	path, err := onePath("stat", call)
	if err != nil {
		return repltypes.Failed(err)
	}
	info, err := f.fs.Stat(path)
	if err != nil {
		return repltypes.Failed(err)
	}
	return repltypes.Immediate(map[string]any{
		"name":     info.Name(),
		"size":     info.Size(),
		"mode":     info.Mode().String(),
		"dir":      info.IsDir(),
		"modified": info.ModTime().Format("2006-01-02 15:04:05"),
	})
}

func (f fsCommands) write(_ context.Context, call repltypes.Call) repltypes.Outcome {
	if len(call.Args) < 2 {
		return repltypes.Failed(fmt.Errorf("usage: fs.write <path> <text>"))
	}
	path := call.Args[0]
	content := strings.Join(call.Args[1:], " ")
	if err := afero.WriteFile(f.fs, path, []byte(content), 0o644); err != nil {
		return repltypes.Failed(err)
	}
	return repltypes.Immediate(len(content))
}

func (f fsCommands) mkdir(_ context.Context, call repltypes.Call) repltypes.Outcome {
	path, err := onePath("mkdir", call)
	if err != nil {
		return repltypes.Failed(err)
	}
	if err := f.fs.MkdirAll(path, 0o755); err != nil {
		return repltypes.Failed(err)
	}
	return repltypes.Immediate(path)
}

func (f fsCommands) rm(_ context.Context, call repltypes.Call) repltypes.Outcome {
	path, err := onePath("rm", call)
	if err != nil {
		return repltypes.Failed(err)
	}
	if err := f.fs.RemoveAll(path); err != nil {
		return repltypes.Failed(err)
	}
	return repltypes.Immediate(path)
}

func onePath(name string, call repltypes.Call) (string, error) {
	if len(call.Args) != 1 {
		return "", fmt.Errorf("usage: fs.%s <path>", name)
	}
	return call.Args[0], nil
}
