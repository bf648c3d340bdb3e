// Package config loads chromatic's TOML configuration file.
//
// The file has three sections:
//
//	[search]
//	strategy = "las-vegas"
//	k = 3
//	iterations = 1000
//	max_k = 10
//	force_valid = true
//	seed = 0
//
//	[palette]
//	colors = ["#FF6B6B", "#4ECDC4", "#45B7D1"]
//
//	[log]
//	file = "/var/log/chromatic.log"
//	max_size = 10
//	max_age = 7
//	verbose = false
//
// Every key is optional. [Load] starts from [Default] and overlays whatever the
// file sets, so a missing file is equivalent to an empty one. A seed of 0 asks
// the search engine to derive one from the clock. When [palette] colors is set
// it replaces the built-in master hues; search then truncates or extends it to
// the requested k.
//
// When [log] file is set, [LogConfig.Writer] returns a size-rotated writer
// backed by lumberjack.
package config
