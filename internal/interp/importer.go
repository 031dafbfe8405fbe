package interp

import (
	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/parser"
)

// evalImport fetches a named unit's source from the host-supplied
// resolver, parses it, and executes its top-level statements against
// the interpreter's global frame — not the importing scope — so
// IMPORTed declarations become globally visible (spec.md §4.4).
// Recursive imports are idempotent by unit name.
func (it *Interpreter) evalImport(n *ast.Import) (*Signal, error) {
	if it.imported[n.Name] {
		return nil, nil
	}
	it.imported[n.Name] = true

	if it.Resolver == nil {
		return nil, errors.NewAt(errors.ImportError, n.Pos(), "no import resolver configured for unit %q", n.Name)
	}
	source, err := it.Resolver(n.Name)
	if err != nil {
		return nil, errors.NewAt(errors.ImportError, n.Pos(), "failed to resolve unit %q: %v", n.Name, err)
	}

	p, err := parser.New(source)
	if err != nil {
		return nil, errors.NewAt(errors.ImportError, n.Pos(), "unit %q: %v", n.Name, err)
	}
	tree, err := p.ParseProgram()
	if err != nil {
		return nil, errors.NewAt(errors.ImportError, n.Pos(), "unit %q: %v", n.Name, err)
	}

	it.trace("import %s", n.Name)
	return it.evalProgram(tree, it.Global)
}
