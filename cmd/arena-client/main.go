package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"clash-arena/internal/client"
	"clash-arena/pkg/logger"
)

func main() {
	host := flag.String("host", "localhost", "Server host to connect to")
	port := flag.Int("port", 8080, "Server port to connect to")
	logLevel := flag.String("logLevel", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	initLogging(*logLevel)

	c := client.NewClient(*host, *port)
	c.SetupDefaultHandlers()

	fmt.Printf("Connecting to server at %s:%d...\n", *host, *port)
	if err := c.Connect(); err != nil {
		logger.Client.Fatal("failed to connect to server: %v", err)
	}
	fmt.Println("Connected. Type 'help' for commands.")

	go cliLoop(c)

	c.WaitForDisconnect()
	fmt.Println("Disconnected from server.")
}

// cliLoop reads console commands until the connection drops
func cliLoop(c *client.Client) {
	reader := bufio.NewReader(os.Stdin)

	for c.IsConnected() {
		fmt.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if err := c.ParseCommand(input); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// initLogging routes client logs to a file so they do not interleave with
// the console UI.
func initLogging(logLevelStr string) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	logsDir := filepath.Join(homeDir, ".clash-arena", "logs")
	if err := logger.InitializeFileLogging(logsDir); err != nil {
		log.Printf("Warning: failed to initialize file logging: %v", err)
	}

	logger.SetGlobalLogLevel(logger.ParseLevel(logLevelStr))
}
