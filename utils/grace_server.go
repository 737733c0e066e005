package utils

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultReadTimeout  = 60 * time.Second
	defaultWriteTimeout = 60 * time.Second
	shutdownTimeout     = 30 * time.Second

	// A child spawned by a zero-downtime restart finds this variable set and
	// inherits the listening socket on fd 3 instead of binding anew.
	gracefulEnv         = "IS_GRACEFUL"
	gracefulEnvPair     = gracefulEnv + "=1"
	inheritedListenerFd = 3
)

// gracefulServer wraps http.Server with zero-downtime restart (SIGUSR2
// forks a child that inherits the listener) and graceful shutdown on
// SIGTERM or SIGINT.
type gracefulServer struct {
	*http.Server

	listener  net.Listener
	inherited bool
	signals   chan os.Signal
	done      chan struct{}
}

func newGracefulServer(addr string, handler http.Handler) *gracefulServer {
	return &gracefulServer{
		Server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
		},
		inherited: os.Getenv(gracefulEnv) != "",
		signals:   make(chan os.Signal, 1),
		done:      make(chan struct{}),
	}
}

// GraceServer serves HTTP on addr until a shutdown signal arrives.
func GraceServer(addr string, handler http.Handler) error {
	srv := newGracefulServer(addr, handler)
	ln, err := srv.listen(addr)
	if err != nil {
		return err
	}
	srv.listener = ln
	return srv.serve()
}

// GraceServerTLS is GraceServer over TLS with the given key pair.
func GraceServerTLS(addr, certFile, keyFile string, handler http.Handler) error {
	srv := newGracefulServer(addr, handler)

	cfg := srv.TLSConfig.Clone()
	if cfg == nil {
		cfg = &tls.Config{}
	}
	if cfg.NextProtos == nil {
		cfg.NextProtos = []string{"http/1.1"}
	}
	var err error
	cfg.Certificates = make([]tls.Certificate, 1)
	cfg.Certificates[0], err = tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return err
	}

	ln, err := srv.listen(addr)
	if err != nil {
		return err
	}
	srv.listener = tls.NewListener(ln, cfg)
	return srv.serve()
}

func (srv *gracefulServer) serve() error {
	go srv.watchSignals()
	err := srv.Server.Serve(srv.listener)
	// Serve returns as soon as the listener closes; wait for in-flight
	// requests to drain before handing control back.
	<-srv.done
	return err
}

func (srv *gracefulServer) listen(addr string) (net.Listener, error) {
	if srv.inherited {
		file := os.NewFile(inheritedListenerFd, "")
		ln, err := net.FileListener(file)
		if err != nil {
			return nil, fmt.Errorf("inherit listener fd %d: %w", inheritedListenerFd, err)
		}
		return ln, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ln, nil
}

func (srv *gracefulServer) watchSignals() {
	signal.Notify(srv.signals, syscall.SIGTERM, syscall.SIGINT, syscall.SIGUSR2)

	for sig := range srv.signals {
		switch sig {
		case syscall.SIGTERM, syscall.SIGINT:
			Sugar.Infof("received %s, draining and shutting down", sig)
			srv.drainAndClose()
		case syscall.SIGUSR2:
			Sugar.Info("received SIGUSR2, restarting with inherited listener")
			pid, err := srv.forkChild()
			if err != nil {
				Sugar.Errorf("restart failed, old server keeps running: %v", err)
				continue
			}
			Sugar.Infof("child started pid=%d, retiring old server", pid)
			srv.drainAndClose()
		}
	}
}

func (srv *gracefulServer) drainAndClose() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		Sugar.Errorf("shutdown did not finish cleanly: %v", err)
	} else {
		Sugar.Info("shutdown complete")
	}
	close(srv.done)
}

// forkChild re-executes the current binary with the listener socket passed
// as fd 3 and the graceful marker in its environment.
func (srv *gracefulServer) forkChild() (int, error) {
	tcpLn, ok := srv.listener.(*net.TCPListener)
	if !ok {
		return 0, fmt.Errorf("listener %T does not expose a file descriptor", srv.listener)
	}
	file, err := tcpLn.File()
	if err != nil {
		return 0, fmt.Errorf("duplicate listener fd: %w", err)
	}

	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if kv != gracefulEnvPair {
			env = append(env, kv)
		}
	}
	env = append(env, gracefulEnvPair)

	attr := &syscall.ProcAttr{
		Env:   env,
		Files: []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd(), file.Fd()},
	}
	pid, err := syscall.ForkExec(os.Args[0], os.Args, attr)
	if err != nil {
		return 0, fmt.Errorf("fork child process: %w", err)
	}
	return pid, nil
}
