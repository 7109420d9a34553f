// Package metadata reads and updates the metadata block of module and
// collection documents.
//
// # Metadata Format
//
// Every index.cnxml and collection.xml carries one metadata element whose
// children use the MDML vocabulary:
//
//	<metadata mdml-version="0.5">
//	  <md:content-id>m42304</md:content-id>
//	  <md:title>Lab 1-1: 4-Bit Mux</md:title>
//	  <md:version>1.3</md:version>
//	  <md:actors>
//	    <md:person userid="jedifan42">...</md:person>
//	  </md:actors>
//	  <md:roles>
//	    <md:role type="author">jedifan42</md:role>
//	  </md:roles>
//	  <md:license url="http://creativecommons.org/licenses/by/3.0/"/>
//	  <md:abstract>Briefly describes ...</md:abstract>
//	  <md:language>en</md:language>
//	</metadata>
//
// # Usage
//
//	meta, err := metadata.ExtractContent(module)
//	if err != nil {
//	    return err
//	}
//
//	err = metadata.Update(module, map[string]string{"version": "1.4"})
//	if errors.Is(err, litezip.ErrUnsupportedField) {
//	    // only "id" and "version" can be changed
//	}
//
// # Package Structure
//
//   - types.go: Metadata record and the XML mapping of the block
//   - extractor.go: Extraction
//   - updater.go: Mutable field policy and in-place rewrite
//   - errors.go: MetadataError and UnsupportedFieldError
//
// Updates rewrite only the text of the targeted elements; every other byte
// of the file, comments and formatting included, is preserved.
package metadata
