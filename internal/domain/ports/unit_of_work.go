package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações
// As verificações do Integrity Guard e a mutação subsequente devem
// executar dentro de WithTransaction para fechar a janela entre
// verificação e escrita sob requisições concorrentes
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
