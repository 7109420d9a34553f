package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/vvka-141/litezip/internal/config"
	"github.com/vvka-141/litezip/internal/files/filesystem"
	"github.com/vvka-141/litezip/internal/logging"
	"github.com/vvka-141/litezip/internal/metadata"
	"github.com/vvka-141/litezip/pkg/litezip"
)

// Scanner parses litezip content from a directory tree.
// Every call reads the filesystem afresh; nothing is cached between calls.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     litezip.Logger
	ignore     []string
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner() *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logging.NewNullLogger(),
		ignore:     config.DefaultIgnore,
	}
}

// WithLogger sets the logger used to report skipped directories.
func (s *Scanner) WithLogger(logger litezip.Logger) *Scanner {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithIgnore replaces the glob patterns that exclude resource files.
func (s *Scanner) WithIgnore(patterns []string) *Scanner {
	s.ignore = append([]string(nil), patterns...)
	return s
}

// ParseModule parses the module stored in dir.
// The identifier is the directory base name. A missing index.cnxml yields
// a *litezip.MissingFileError.
func (s *Scanner) ParseModule(dir string) (litezip.Module, error) {
	file, resources, err := s.parseContentDir(dir, litezip.ModuleFileName, s.ignore)
	if err != nil {
		return litezip.Module{}, err
	}
	return litezip.Module{
		ID:        filepath.Base(dir),
		File:      file,
		Resources: resources,
	}, nil
}

// ParseCollection parses the collection stored in dir.
// The identifier is the md:content-id of collection.xml, or the directory
// base name when the file does not declare one. A missing collection.xml
// yields a *litezip.MissingFileError.
func (s *Scanner) ParseCollection(dir string) (litezip.Collection, error) {
	file, resources, err := s.parseContentDir(dir, litezip.CollectionFileName, s.ignore)
	if err != nil {
		return litezip.Collection{}, err
	}
	return litezip.Collection{
		ID:        s.collectionID(dir, file),
		File:      file,
		Resources: resources,
	}, nil
}

// collectionID reads the declared identifier of a collection file.
// Unreadable or malformed files fall back to the directory name; the
// validator reports them.
func (s *Scanner) collectionID(dir, file string) string {
	data, err := s.fsProvider.ReadFile(file)
	if err != nil {
		s.logger.Verbose("Cannot read %s for its identifier: %v", file, err)
		return filepath.Base(dir)
	}
	id, err := metadata.ContentID(data, file)
	if err != nil || id == "" {
		s.logger.Verbose("No content-id in %s, using directory name", file)
		return filepath.Base(dir)
	}
	return id
}

// ParseLitezip parses a whole tree: the collection at root and every
// immediate subdirectory that holds an index.cnxml, in name order.
// Subdirectories without index.cnxml are skipped. A litezip.yaml at root
// adds its ignore patterns to the scanner's own.
func (s *Scanner) ParseLitezip(root string) (litezip.Tree, error) {
	ignore, err := s.treeIgnore(root)
	if err != nil {
		return litezip.Tree{}, err
	}

	colFile, colResources, err := s.parseContentDir(root, litezip.CollectionFileName, ignore)
	if err != nil {
		return litezip.Tree{}, err
	}
	tree := litezip.Tree{
		Root: root,
		Collection: litezip.Collection{
			ID:        s.collectionID(root, colFile),
			File:      colFile,
			Resources: colResources,
		},
	}

	entries, err := s.fsProvider.ReadDir(root)
	if err != nil {
		return litezip.Tree{}, fmt.Errorf("failed to read tree %s: %w", root, err)
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		file, resources, err := s.parseContentDir(dir, litezip.ModuleFileName, ignore)
		if errors.Is(err, litezip.ErrMissingFile) {
			s.logger.Verbose("Skipping %s: no %s", dir, litezip.ModuleFileName)
			continue
		}
		if err != nil {
			return litezip.Tree{}, err
		}

		id := entry.Name()
		if seen[id] {
			return litezip.Tree{}, fmt.Errorf("duplicate module identifier %q in %s", id, root)
		}
		seen[id] = true

		tree.Modules = append(tree.Modules, litezip.Module{ID: id, File: file, Resources: resources})
	}

	s.logger.Verbose("Parsed %s: collection %s, %d modules", root, tree.Collection.ID, len(tree.Modules))
	return tree, nil
}

// treeIgnore merges the scanner's patterns with those of litezip.yaml at root.
func (s *Scanner) treeIgnore(root string) ([]string, error) {
	path := filepath.Join(root, litezip.ConfigFileName)
	data, err := s.fsProvider.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.ignore, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := config.Parse(data)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Loaded %s (%d ignore patterns)", path, len(cfg.Ignore))

	patterns := append([]string{litezip.ConfigFileName}, s.ignore...)
	return append(patterns, cfg.Ignore...), nil
}

// parseContentDir locates the content file in dir and lists the remaining
// regular files as resources, sorted by name. Directories, dangling links
// and special files are not resources.
func (s *Scanner) parseContentDir(dir, contentName string, ignore []string) (string, []string, error) {
	file := filepath.Join(dir, contentName)

	info, err := s.fsProvider.Stat(file)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return "", nil, &litezip.MissingFileError{Path: file}
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to stat %s: %w", file, err)
	}

	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	resources := []string{}
	for _, entry := range entries {
		if !entry.Mode().IsRegular() || entry.Name() == contentName || isIgnored(entry.Name(), ignore) {
			continue
		}
		resources = append(resources, filepath.Join(dir, entry.Name()))
	}
	return file, resources, nil
}

func isIgnored(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
