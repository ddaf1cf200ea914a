// Package shell runs a long-lived interactive shell and publishes its
// output for the shell panel.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"justcode/internal/log"
	"justcode/internal/pubsub"
)

// Config holds shell configuration.
type Config struct {
	// Command is the shell binary to run. Empty means $SHELL, falling
	// back to /bin/sh.
	Command string
	// WorkDir is the shell's working directory.
	WorkDir string
}

// Shell wraps a child shell process. Commands go in through stdin; each
// output line is published on the broker as a ShellStdoutEvent or
// ShellStderrEvent. Process exit publishes a ShellExitedEvent.
type Shell struct {
	broker *pubsub.Broker[string]

	mu      sync.Mutex
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	running bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates a shell wrapper. Call Start before Run.
func New() *Shell {
	return &Shell{broker: pubsub.NewBroker[string]()}
}

// Events returns the broker delivering output lines.
func (s *Shell) Events() *pubsub.Broker[string] {
	return s.broker
}

// Running reports whether the child process is alive.
func (s *Shell) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start launches the shell process and its output pumps.
func (s *Shell) Start(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("shell already running")
	}

	command := cfg.Command
	if command == "" {
		command = os.Getenv("SHELL")
	}
	if command == "" {
		command = "/bin/sh"
	}

	cmd := exec.Command(command)
	cmd.Dir = cfg.WorkDir

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("creating stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("creating stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", command, err)
	}
	log.Debug(log.CatShell, "shell started", "command", command, "pid", cmd.Process.Pid)

	s.cmd = cmd
	s.stdin = stdin
	s.running = true
	s.done = make(chan struct{})

	s.wg.Add(2)
	go s.pump(stdout, pubsub.ShellStdoutEvent)
	go s.pump(stderr, pubsub.ShellStderrEvent)
	go s.waitForExit()

	return nil
}

// Run sends one command line to the shell.
func (s *Shell) Run(command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return fmt.Errorf("shell is not running")
	}
	if _, err := io.WriteString(s.stdin, command+"\n"); err != nil {
		return fmt.Errorf("writing command: %w", err)
	}
	return nil
}

// Stop closes stdin and waits for the process to exit. The broker stays
// open so the exit event reaches subscribers; callers close it via the
// app shutdown path.
func (s *Shell) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	stdin := s.stdin
	done := s.done
	s.mu.Unlock()

	// Closing stdin lets the shell exit on its own.
	if err := stdin.Close(); err != nil {
		log.Debug(log.CatShell, "closing shell stdin", "error", err)
	}
	<-done
	return nil
}

// pump reads lines from one output stream and publishes them. Escape
// sequences are stripped so the panel renders plain text.
func (s *Shell) pump(r io.Reader, eventType pubsub.EventType) {
	defer s.wg.Done()

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		s.broker.Publish(eventType, ansi.Strip(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		log.Debug(log.CatShell, "output scanner error", "error", err)
	}
}

func (s *Shell) waitForExit() {
	defer close(s.done)

	// Output pipes must drain before Wait.
	s.wg.Wait()
	err := s.cmd.Wait()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			log.ErrorErr(log.CatShell, "shell wait failed", err)
			exitCode = -1
		}
	}
	log.Debug(log.CatShell, "shell exited", "code", exitCode)
	s.broker.Publish(pubsub.ShellExitedEvent, fmt.Sprintf("exit %d", exitCode))
}
