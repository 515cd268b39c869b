package pipeline

import "github.com/HYDPublic/pipelinetesting/internal/docspec"

// Context is the per-scenario configuration and state object the engine
// consults while executing a pipeline.
//
// It carries the document-spec registry (keyed both by literal name and
// by root name), the group signing certificate thumbprint, and the
// transactional-support switch. Registrations accumulate monotonically:
// re-registration under an existing key overwrites, nothing is removed.
//
// Not safe for concurrent use; a context belongs to exactly one wrapper.
type Context struct {
	specsByName map[string]*docspec.DocumentSpec
	specsByType map[string]*docspec.DocumentSpec

	signingCertificate string

	transactional bool
	tokens        TokenGenerator
}

// NewContext creates an empty context. A nil generator defaults to
// UUIDv7Generator.
func NewContext(tokens TokenGenerator) *Context {
	if tokens == nil {
		tokens = UUIDv7Generator{}
	}
	return &Context{
		specsByName: make(map[string]*docspec.DocumentSpec),
		specsByType: make(map[string]*docspec.DocumentSpec),
		tokens:      tokens,
	}
}

// RegisterByName registers a document spec under a literal name key
// (fully-qualified or simple type name). Overwrites any previous spec
// registered under the same name.
func (c *Context) RegisterByName(name string, spec *docspec.DocumentSpec) {
	c.specsByName[name] = spec
}

// RegisterByType registers a document spec under a root name key
// ("namespace#rootElement" or bare "rootElement"). Overwrites any
// previous spec registered under the same root name.
func (c *Context) RegisterByType(rootName string, spec *docspec.DocumentSpec) {
	c.specsByType[rootName] = spec
}

// DocSpecByName looks up a document spec by literal name.
func (c *Context) DocSpecByName(name string) (*docspec.DocumentSpec, bool) {
	spec, ok := c.specsByName[name]
	return spec, ok
}

// DocSpecByType looks up a document spec by root name.
func (c *Context) DocSpecByType(rootName string) (*docspec.DocumentSpec, bool) {
	spec, ok := c.specsByType[rootName]
	return spec, ok
}

// SigningCertificate returns the group signing certificate thumbprint.
func (c *Context) SigningCertificate() string {
	return c.signingCertificate
}

// SetSigningCertificate sets the group signing certificate thumbprint.
func (c *Context) SetSigningCertificate(thumbprint string) {
	c.signingCertificate = thumbprint
}

// TransactionalSupport reports whether transactional execution has been
// enabled on this context.
func (c *Context) TransactionalSupport() bool {
	return c.transactional
}

// EnableTransactionSupport switches the context into transactional mode
// and returns a fresh control handle for the caller to observe the
// transaction's lifecycle.
//
// Each call mints a new handle with a new token; the context does not
// cache or reuse handles across calls.
func (c *Context) EnableTransactionSupport() *TransactionControl {
	c.transactional = true
	return newTransactionControl(c.tokens.Generate())
}
