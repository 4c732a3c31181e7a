package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/fieldrover/bagflow/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	topicsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	topicNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	topicTypeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)

	topicCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics <bag-path>",
	Short: "List recorded topics",
	Long:  `List every topic recorded in the bag with its message type, message count and serialization format.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := internal.OpenBag(args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		conns := reader.Connections()
		counts := reader.Metadata().MessageCountByTopic()

		fmt.Fprintln(cmd.OutOrStdout(), topicsHeaderStyle.Render(fmt.Sprintf("%d topic(s) in %s", len(conns), reader.Location.Dir)))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, conn := range conns {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				topicNameStyle.Render(conn.Topic),
				topicTypeStyle.Render(conn.MsgType),
				topicCountStyle.Render(fmt.Sprintf("%d msgs", counts[conn.Topic])),
				conn.SerializationFormat,
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
