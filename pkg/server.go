package pkg

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// Server hands every ssh connection its own fourterm process running in a
// pty. Players on one connection share the keyboard, connections never
// see each other's games.
type Server struct {
	*ssh.Server
	Config   Config
	Sessions *Sessions
}

func NewServer(cfg Config) (*Server, error) {
	s := &Server{
		Config:   cfg,
		Sessions: NewSessions(),
	}

	s.Server = &ssh.Server{
		Addr:        cfg.Addr,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if cfg.HostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKey)); err != nil {
			return nil, fmt.Errorf("server: host key %s: %w", cfg.HostKey, err)
		}
	} else {
		log.Println("No host key configured, using a generated one")
	}

	return s, nil
}

func setWinsize(f *os.File, w, h int) {
	if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)}); err != nil {
		log.Printf("Failed to resize pty: %v", err)
	}
}

// clientCommand builds the command run for one session
func (s *Server) clientCommand(ctx context.Context, sess *Session) *exec.Cmd {
	cmd := exec.CommandContext(ctx, s.Config.Binary,
		"-session", sess.Name,
		"-log", s.Config.ClientLog)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", sess.Term))
	return cmd
}

func (s *Server) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "non-interactive terminals are not supported\n")
		sshSession.Exit(1)
		return
	}

	sess, err := s.Sessions.Add(&Session{
		User:    sshSession.User(),
		Remote:  sshSession.RemoteAddr().String(),
		Term:    ptyReq.Term,
		Started: time.Now(),
	}, s.Config.MaxSessions)
	if err != nil {
		log.Printf("Refused %s@%s: %v", sshSession.User(), sshSession.RemoteAddr(), err)
		io.WriteString(sshSession, "server is full, try again later\n")
		sshSession.Exit(1)
		return
	}
	defer s.Sessions.Remove(sess.Name)
	log.Printf("Session %s started for %s@%s (%d active)", sess.Name, sess.User, sess.Remote, s.Sessions.Count())

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := s.clientCommand(cmdCtx, sess)
	f, err := pty.Start(cmd)
	if err != nil {
		log.Printf("Session %s: failed to start %s: %v", sess.Name, s.Config.Binary, err)
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sshSession.Exit(1)
		return
	}
	defer f.Close()

	setWinsize(f, ptyReq.Window.Width, ptyReq.Window.Height)
	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.Printf("Session %s: client exited: %v", sess.Name, err)
	}
	log.Printf("Session %s ended after %s", sess.Name, time.Since(sess.Started).Round(time.Second))
}

// Shutdown stops accepting connections and waits for sessions to end
func (s *Server) Shutdown(ctx context.Context) error {
	log.Printf("Shutting down with %d active sessions", s.Sessions.Count())
	return s.Server.Shutdown(ctx)
}
