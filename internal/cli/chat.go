package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecobuddy/ecobuddy/internal/chat"
)

// newChatCmd creates the chat command. With arguments it sends a single
// message and prints the reply; without, it runs an interactive loop that
// keeps the conversation history for context.
func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the sustainability assistant",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := chat.NewClient(app.Config.Chat.APIKey)
			client.BaseURL = app.Config.Chat.BaseURL
			client.Model = app.Config.Chat.Model

			if len(args) > 0 {
				reply, err := client.Send(cmd.Context(), strings.Join(args, " "), nil)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), reply)
				return nil
			}

			if !isTerminal(os.Stdin) {
				return errors.New("interactive chat requires a terminal; pass the message as an argument instead")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Chat with EcoBuddy about sustainability. Type \"exit\" to quit.")

			var history []chat.Message
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "you> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}

				reply, err := client.Send(cmd.Context(), line, history)
				if err != nil {
					// A failed turn should not end the session.
					cmd.PrintErrf("error: %v\n", err)
					continue
				}
				fmt.Fprintln(out, reply)
				fmt.Fprintln(out)

				history = append(history,
					chat.Message{Role: "user", Content: line},
					chat.Message{Role: "assistant", Content: reply},
				)
			}
			return scanner.Err()
		},
	}
}
