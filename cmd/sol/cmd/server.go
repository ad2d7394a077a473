package cmd

import (
	"fmt"
	"net"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hyperswine/sol/repl"
)

var cyanColor = color.New(color.FgCyan)

var serverCmd = &cobra.Command{
	Use:   "server <port>",
	Short: "Serve Sol REPL sessions over TCP",
	Long: `Listens on the given port and gives every connecting client its
own REPL session, each with its own Environment (adapted from the
teacher's TCP REPL server in main/main.go).`,
	Args: cobra.ExactArgs(1),
	RunE: runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	port := args[0]
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("could not listen on port %s: %w", port, err)
	}
	defer listener.Close()
	cyanColor.Printf("Sol REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			cyanColor.Printf("accept error: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	r := repl.New(debugFlag)
	r.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
