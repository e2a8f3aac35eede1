// Package lsp exposes parse errors as language-server diagnostics: every
// document sync reparses the full text and publishes either the failure
// position or an empty diagnostic list.
package lsp

import (
	"github.com/dhamidi/jsonr/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "jsonr"

type ServerOption func(*Server)

// WithTrailingCommas makes the server accept trailing commas in checked
// documents.
func WithTrailingCommas() ServerOption {
	return func(s *Server) {
		s.parseOpts = append(s.parseOpts, parser.WithTrailingCommas())
	}
}

// WithDebug logs protocol traffic.
func WithDebug() ServerOption {
	return func(s *Server) {
		s.debug = true
	}
}

type Server struct {
	handler   protocol.Handler
	server    *server.Server
	version   string
	parseOpts []parser.Option
	debug     bool
}

func NewServer(version string, opts ...ServerOption) *Server {
	ls := &Server{
		version: version,
	}
	for _, opt := range opts {
		opt(ls)
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, ls.debug)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publish(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publish(ctx, params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publish(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text []byte) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: ls.Diagnostics(text),
	})
}

// Diagnostics parses input and returns at most one diagnostic: the parser
// stops at the first violation. The result is never nil, so a successful
// parse clears previously published diagnostics.
func (ls *Server) Diagnostics(input []byte) []protocol.Diagnostic {
	_, err := parser.ParseWithDiagnostics(input, ls.parseOpts...)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	// LSP positions are 0-based; the parser's are 1-based.
	start := protocol.Position{
		Line:      protocol.UInteger(err.Line - 1),
		Character: protocol.UInteger(err.Column - 1),
	}
	end := protocol.Position{
		Line:      start.Line,
		Character: start.Character + 1,
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	code := protocol.IntegerOrString{Value: err.Kind.String()}

	return []protocol.Diagnostic{
		{
			Range:    protocol.Range{Start: start, End: end},
			Severity: &severity,
			Code:     &code,
			Source:   &source,
			Message:  err.Message,
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
