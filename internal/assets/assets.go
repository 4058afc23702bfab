package assets

import _ "embed"

// ContentsJSON is the asset catalog manifest for the app iconset. It is
// static: the slots never depend on which images a run produced.
//
//go:embed Contents.json
var ContentsJSON []byte

// ManifestName is the file name Xcode expects inside an .appiconset.
const ManifestName = "Contents.json"
