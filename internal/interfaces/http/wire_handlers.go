package http

import (
	"zelo/internal/interfaces/http/handlers"
	"zelo/internal/shared/logger"
)

type allHandlers struct {
	portal     *handlers.SupplierPortalHandler
	assistance *handlers.AssistanceHandler
	building   *handlers.BuildingHandler
	supplier   *handlers.SupplierHandler
}

func buildHandlers(ucs *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		portal: handlers.NewSupplierPortalHandler(
			ucs.supplierAction,
			ucs.viewByToken,
			ucs.processReminders,
			log,
		),
		assistance: handlers.NewAssistanceHandler(
			ucs.createAssistance,
			ucs.getAssistance,
			ucs.listAssistances,
			ucs.assignSupplier,
			ucs.cancelAssistance,
			ucs.validate,
			ucs.reopen,
			ucs.addComm,
			ucs.listComms,
			ucs.uploadAttachment,
			ucs.listAttachments,
			log,
		),
		building: handlers.NewBuildingHandler(
			ucs.createBuilding,
			ucs.updateBuilding,
			ucs.listBuildings,
			ucs.getBuilding,
			log,
		),
		supplier: handlers.NewSupplierHandler(
			ucs.createSupplier,
			ucs.updateSupplier,
			ucs.listSuppliers,
			ucs.getSupplier,
			log,
		),
	}
}
