// # docgen
//
// `docgen` extracts man pages embedded in source-code comments and writes each
// page to its own plain-text file. It is meant to run over a whole source tree
// so the reference pages for a project live next to the code they describe.
//
// ## Page format
//
// A page begins with the `@MANSTART` token followed by the page name in braces
// and ends with `@MANEND`:
//
//	/// @MANSTART{example}
//	/// example(1)
//	/// # Example
//	/// This is a man page.
//	/// @MANEND
//
// The first non-blank line after the name is ignored (it is typically used as a
// title line), as is the line carrying `@MANEND`. Every other line loses at most one leading decoration, tried in
// this order: `\`, `// `, `//! `, `/// `, `->`, `<!-`. Stacked decorations are
// not stripped twice, so `// -> text` becomes `-> text`.
//
// ## Usage
//
//	docgen [flags] [source_dir] [output_dir]
//
// `source_dir` defaults to the current directory and `output_dir` to `man`.
// Every non-hidden file is scanned; dot-prefixed files and directories are
// skipped and symbolic links are followed. Each page is announced as
// `source -> destination` while it is written.
//
// Files that cannot be read (including files that are not valid UTF-8) are
// reported and skipped. Anything else is fatal: a malformed block, a page
// whose output file already exists, or a failed write stops the run with a
// non-zero exit status. Pages written before the failure are left in place.
//
// ## Flags
//
//   - `-v`, `--verbose`: log scanned directories and discovered pages to
//     stderr. Repeat (`-vv`) or pass a level (`--verbose=2`) for more.
//
// ## Shell Completion
//
//	docgen completion bash        # bash
//	docgen completion zsh         # zsh
//	docgen completion fish | source
//	docgen completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	docgen gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
