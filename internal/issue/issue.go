// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PackfileNotFoundId Id = iota + 1
	PackfileParseErrorId
	ClassifierCollisionId
	UnsupportedFormatId
	ArchivingFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	packfileNotFoundIssue = &Issue{
		id: PackfileNotFoundId,
		mdMsg: `
# No packfile found!

We looked for a packfile but could not find one.

## Search locations (in order of precedence):
1. The path given via --packfile
2. packfile.cue in the current directory

## Things you can try:
- Run prodpack from the directory that holds your packfile.cue
- Or point at it explicitly:
~~~
$ prodpack archive --packfile ./build/packfile.cue
~~~

## Example packfile:
~~~cue
products: [
	{id: "main"},
]
environments: [
	{os: "linux", ws: "gtk", arch: "x86_64"},
]
~~~`,
	}

	packfileParseErrorIssue = &Issue{
		id: PackfileParseErrorId,
		mdMsg: `
# Failed to parse packfile!

Your packfile contains syntax errors or invalid configuration.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- Empty product ids or environment axis values

## Things you can try:
- Check the error message above for the specific field path
- Validate the file with the cue command-line tool`,
	}

	classifierCollisionIssue = &Issue{
		id: ClassifierCollisionId,
		mdMsg: `
# Artifact classifiers are not unique!

Two product/environment combinations resolve to the same classifier, so
their archives would overwrite each other. Nothing was packaged.

## Things you can try:
- Give colliding products distinct attach_id values:
~~~cue
products: [
	{id: "main"},
	{id: "extra", attach_id: "extra"},
]
~~~
- Or select a subset of products so the collision disappears`,
	}

	unsupportedFormatIssue = &Issue{
		id: UnsupportedFormatId,
		mdMsg: `
# Unknown archive format!

A formats entry resolved to a format with no registered backend.

## Supported formats:
- **zip** (default)
- **tar.gz**
- **tgz** (same backend as tar.gz, keeps the .tgz extension)

## Example:
~~~cue
formats: {
	linux: "tar.gz"
	multiPlatformPackage: "zip"
}
~~~`,
	}

	archivingFailedIssue = &Issue{
		id: ArchivingFailedId,
		mdMsg: `
# Archiving failed!

Writing a product archive failed part-way through. The destination file may
be left truncated; the run was aborted and no further products were
packaged.

## Common causes:
- The materialized product directory is missing (did the earlier
  materialization step run?)
- No space left on the output device
- Permission denied on the output directory`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the prodpack configuration file.

## Configuration file locations:
- Linux: ~/.config/prodpack/config.cue
- macOS: ~/Library/Application Support/prodpack/config.cue
- Windows: %APPDATA%\prodpack\config.cue

## Example configuration:
~~~cue
archive: {
	tar_backend: "fast" // or "stdlib"
}
ui: {
	verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		packfileNotFoundIssue.Id():    packfileNotFoundIssue,
		packfileParseErrorIssue.Id():  packfileParseErrorIssue,
		classifierCollisionIssue.Id(): classifierCollisionIssue,
		unsupportedFormatIssue.Id():   unsupportedFormatIssue,
		archivingFailedIssue.Id():     archivingFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
