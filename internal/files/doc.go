// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Parsing of modules, collections and whole litezip trees
//
// # Usage
//
//	import "github.com/vvka-141/litezip/internal/files/scanner"
//
//	tree, err := scanner.NewScanner().ParseLitezip("./col11405")
//	if err != nil {
//	    return err
//	}
//	for _, content := range tree.Contents() {
//	    fmt.Println(content.Identifier(), content.ContentFile())
//	}
package files
