package http

import (
	assistanceUC "zelo/internal/application/assistance/usecases"
	auditApp "zelo/internal/application/audit"
	buildingUC "zelo/internal/application/building/usecases"
	"zelo/internal/application/reminder"
	supplierUC "zelo/internal/application/supplier/usecases"
	"zelo/internal/infrastructure/email"
	"zelo/internal/infrastructure/ratelimit"
	"zelo/internal/shared/db"
	"zelo/internal/shared/logger"
)

type allUseCases struct {
	supplierAction   *assistanceUC.SupplierActionUseCase
	viewByToken      *assistanceUC.ViewByTokenUseCase
	createAssistance *assistanceUC.CreateAssistanceUseCase
	getAssistance    *assistanceUC.GetAssistanceUseCase
	listAssistances  *assistanceUC.ListAssistancesUseCase
	assignSupplier   *assistanceUC.AssignSupplierUseCase
	cancelAssistance *assistanceUC.CancelAssistanceUseCase
	validate         *assistanceUC.ValidateAssistanceUseCase
	reopen           *assistanceUC.ReopenAssistanceUseCase
	addComm          *assistanceUC.AddCommunicationUseCase
	listComms        *assistanceUC.ListCommunicationsUseCase
	uploadAttachment *assistanceUC.UploadAttachmentUseCase
	listAttachments  *assistanceUC.ListAttachmentsUseCase
	createBuilding   *buildingUC.CreateBuildingUseCase
	updateBuilding   *buildingUC.UpdateBuildingUseCase
	listBuildings    *buildingUC.ListBuildingsUseCase
	getBuilding      *buildingUC.GetBuildingUseCase
	createSupplier   *supplierUC.CreateSupplierUseCase
	updateSupplier   *supplierUC.UpdateSupplierUseCase
	listSuppliers    *supplierUC.ListSuppliersUseCase
	getSupplier      *supplierUC.GetSupplierUseCase
	processReminders *reminder.ProcessRemindersUseCase
}

func buildUseCases(
	repos *repositories,
	auditor *auditApp.SecurityAuditor,
	limiter *ratelimit.PolicyLimiter,
	emailSvc *email.SMTPEmailService,
	photos assistanceUC.PhotoStore,
	txManager *db.TransactionManager,
	log logger.Interface,
) *allUseCases {
	return &allUseCases{
		supplierAction: assistanceUC.NewSupplierActionUseCase(
			repos.assistances,
			repos.communications,
			repos.attachments,
			repos.suppliers,
			repos.buildings,
			auditor,
			limiter,
			emailSvc,
			photos,
			txManager,
			log,
		),
		viewByToken: assistanceUC.NewViewByTokenUseCase(
			repos.assistances,
			repos.communications,
			repos.attachments,
			repos.buildings,
			auditor,
			limiter,
			log,
		),
		createAssistance: assistanceUC.NewCreateAssistanceUseCase(repos.assistances, repos.buildings, log),
		getAssistance:    assistanceUC.NewGetAssistanceUseCase(repos.assistances, repos.communications, repos.attachments, log),
		listAssistances:  assistanceUC.NewListAssistancesUseCase(repos.assistances, log),
		assignSupplier:   assistanceUC.NewAssignSupplierUseCase(repos.assistances, repos.suppliers, repos.buildings, emailSvc, log),
		cancelAssistance: assistanceUC.NewCancelAssistanceUseCase(repos.assistances, repos.communications, log),
		validate:         assistanceUC.NewValidateAssistanceUseCase(repos.assistances, log),
		reopen:           assistanceUC.NewReopenAssistanceUseCase(repos.assistances, log),
		addComm:          assistanceUC.NewAddCommunicationUseCase(repos.assistances, repos.communications, log),
		listComms:        assistanceUC.NewListCommunicationsUseCase(repos.communications, log),
		uploadAttachment: assistanceUC.NewUploadAttachmentUseCase(repos.assistances, repos.attachments, photos, log),
		listAttachments:  assistanceUC.NewListAttachmentsUseCase(repos.attachments, log),
		createBuilding:   buildingUC.NewCreateBuildingUseCase(repos.buildings, log),
		updateBuilding:   buildingUC.NewUpdateBuildingUseCase(repos.buildings, log),
		listBuildings:    buildingUC.NewListBuildingsUseCase(repos.buildings, log),
		getBuilding:      buildingUC.NewGetBuildingUseCase(repos.buildings, log),
		createSupplier:   supplierUC.NewCreateSupplierUseCase(repos.suppliers, log),
		updateSupplier:   supplierUC.NewUpdateSupplierUseCase(repos.suppliers, log),
		listSuppliers:    supplierUC.NewListSuppliersUseCase(repos.suppliers, log),
		getSupplier:      supplierUC.NewGetSupplierUseCase(repos.suppliers, log),
		processReminders: reminder.NewProcessRemindersUseCase(repos.assistances, repos.suppliers, repos.buildings, emailSvc, log),
	}
}
