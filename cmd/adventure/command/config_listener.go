package command

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-adventure/internal/web"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-service/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

type ListenerType int

const (
	ListenerTypeHTTP ListenerType = iota
	ListenerTypeTelnet
	ListenerTypeSSH
)

func (lt *ListenerType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "http":
		*lt = ListenerTypeHTTP
	case "telnet":
		*lt = ListenerTypeTelnet
	case "ssh":
		*lt = ListenerTypeSSH
	default:
		return fmt.Errorf("unknown listener type: %s", text)
	}
	return nil
}

func (lt ListenerType) String() string {
	switch lt {
	case ListenerTypeHTTP:
		return "http"
	case ListenerTypeTelnet:
		return "telnet"
	case ListenerTypeSSH:
		return "ssh"
	default:
		return fmt.Sprintf("ListenerType(%d)", int(lt))
	}
}

type ListenerConfig struct {
	Protocol    ListenerType `json:"protocol"`
	Port        uint16       `json:"port"`
	HostKeyPath string       `json:"host_key_path,omitempty"`
}

func (cl *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	if cl.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}
	if cl.HostKeyPath != "" && cl.Protocol != ListenerTypeSSH {
		el.Add(fmt.Errorf("host_key_path only applies to ssh listeners"))
	}

	return el.Err()
}

// frontEnds holds what each listener serves.
type frontEnds struct {
	sessions *session.Manager
	web      []web.ServerOpt
	console  *listener.ConnectionManager
	logger   logrus.FieldLogger
}

func (cl *ListenerConfig) BuildListener(fe *frontEnds) (service.Worker, error) {
	switch cl.Protocol {
	case ListenerTypeHTTP:
		s, err := web.NewServer(cl.Port, fe.sessions, fe.web...)
		if err != nil {
			return nil, fmt.Errorf("creating http server: %w", err)
		}
		return s, nil
	case ListenerTypeTelnet:
		return listener.NewTelnetListener(cl.Port, fe.console, fe.logger), nil
	case ListenerTypeSSH:
		hostKey, err := cl.loadOrGenerateHostKey(fe.logger)
		if err != nil {
			return nil, fmt.Errorf("setting up ssh host key: %w", err)
		}
		return listener.NewSshListener(cl.Port, fe.console, hostKey, fe.logger), nil
	default:
		return nil, fmt.Errorf("unknown listener type: %v", cl.Protocol)
	}
}

func (cl *ListenerConfig) loadOrGenerateHostKey(logger logrus.FieldLogger) (ssh.Signer, error) {
	if cl.HostKeyPath != "" {
		keyBytes, err := os.ReadFile(cl.HostKeyPath)
		if err != nil {
			return nil, fmt.Errorf("reading host key %q: %w", cl.HostKeyPath, err)
		}
		return listener.LoadHostKey(keyBytes)
	}

	logger.Warn("no host_key_path configured for ssh listener, generating ephemeral key")
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating ephemeral key: %w", err)
	}
	signer, err := ssh.NewSignerFromKey(privKey)
	if err != nil {
		return nil, fmt.Errorf("creating signer from ephemeral key: %w", err)
	}
	return signer, nil
}
