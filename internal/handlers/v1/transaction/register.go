package transaction

import "github.com/danielgtaylor/huma/v2"

type transactionService interface {
	transactionCreator
	transactionLister
	transactionUpdater
	transactionDeleter
}

func Register(api huma.API, svc transactionService) {
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
}
