package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet registers the source streams of a scanning session and maps
// FileIDs back to display paths for diagnostics.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> id
	baseDir string            // базовая директория для относительных путей
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase создаёт FileSet с заданной базовой директорией.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// SetBaseDir устанавливает базовую директорию для относительных путей.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.baseDir = dir
}

// BaseDir возвращает текущую базовую директорию.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add registers a stream under path and returns a new FileID.
// It always creates a new FileID even if the path was registered before.
func (fileSet *FileSet) Add(path string, flags FileFlags) FileID {
	normalizedPath := normalizePath(path)
	if flags&FileStdin != 0 {
		normalizedPath = StdinName
	}

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:    id,
		Path:  normalizedPath,
		Flags: flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// AddVirtual registers an in-memory stream (tests, generated input).
func (fileSet *FileSet) AddVirtual(name string) FileID {
	return fileSet.Add(name, FileVirtual)
}

// AddStdin registers the process standard input.
func (fileSet *FileSet) AddStdin() FileID {
	return fileSet.Add(StdinName, FileStdin)
}

// Open opens path for streaming and registers it. The caller owns the
// returned reader and must close it.
func (fileSet *FileSet) Open(path string) (io.ReadCloser, FileID, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, 0, fmt.Errorf("%s: is a directory", path)
	}
	return f, fileSet.Add(path, 0), nil
}

// Get returns the file metadata for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// Len returns the number of registered files.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// PathOf returns the display path of a file formatted with mode.
// Unknown ids render as "?".
func (fileSet *FileSet) PathOf(id FileID, mode string) string {
	f := fileSet.Get(id)
	if f == nil {
		return "?"
	}
	return f.FormatPath(mode, fileSet.BaseDir())
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
func (f *File) FormatPath(mode, baseDir string) string {
	if f.IsStdin() {
		return StdinName
	}
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		// короткие и относительные пути — как есть, иначе basename
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}
