package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tderrors "git.home.luguber.info/inful/tagdoc/internal/errors"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
	"git.home.luguber.info/inful/tagdoc/internal/plugin/builtin"
)

// TagsCmd implements the 'tags' command.
type TagsCmd struct {
	Kinds bool `help:"List member kinds instead of tags"`
}

func (t *TagsCmd) Run(_ *Global, _ *CLI) error {
	reg, err := builtin.NewRegistry()
	if err != nil {
		return tderrors.RegistryInvalid(err)
	}
	if t.Kinds {
		return ListMemberKinds(os.Stdout, reg)
	}
	return ListTags(os.Stdout, reg)
}

// ListTags writes one line per tag in render order.
func ListTags(out io.Writer, reg *plugin.Registry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TAGNAME\tPATTERN\tSCOPE\tPOSITION\tREPEATABLE")
	for _, tag := range reg.RenderOrder() {
		d := tag.Descriptor()
		pattern := "-"
		if d.Pattern != "" {
			pattern = "@" + d.Pattern
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%t\n", d.Tagname, pattern, d.Scope, d.Position, d.Repeatable)
	}
	return tw.Flush()
}

// ListMemberKinds writes the member kinds in section order.
func ListMemberKinds(out io.Writer, reg *plugin.Registry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tCATEGORY\tTITLE\tSUBSECTIONS")
	for _, mk := range reg.MemberKindDescriptors() {
		subs := len(mk.Subsections)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", mk.Kind, mk.Category, mk.Title, subs)
	}
	return tw.Flush()
}
