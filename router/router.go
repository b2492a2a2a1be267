package router

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Onboarding-System/config"
	"Employee-Onboarding-System/config/middleware"
	_ "Employee-Onboarding-System/docs"
	"Employee-Onboarding-System/handlers"
	"Employee-Onboarding-System/models"
	"Employee-Onboarding-System/pkg/mailer"
	"Employee-Onboarding-System/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log.Println("Registering application routes...")

	// Repositories
	userRepo := repository.NewUserRepository()
	employeeRepo := repository.NewEmployeeRepository()
	workplaceRepo := repository.NewWorkplaceRepository()
	aadharRepo := repository.NewDocumentRepository[models.Aadhar](config.AadharCollection, "aadhar")
	panRepo := repository.NewDocumentRepository[models.Pan](config.PanCollection, "pan")
	bankRepo := repository.NewDocumentRepository[models.BankDetail](config.BankDetailCollection, "bank detail")

	mail := mailer.New(cfg)

	// Document transitions notify the owning employee by mail. The lookup and
	// send run in the background so a slow SMTP server never delays the
	// response.
	notifyOwner := func(kind string) handlers.StatusNotifier {
		return func(ctx context.Context, employeeID primitive.ObjectID, status, reply string) {
			go func() {
				employee, err := employeeRepo.FindByID(ctx, employeeID)
				if err != nil || employee == nil {
					return
				}
				mail.NotifyStatusChange(employee.Email, employee.Name, kind, status, reply)
			}()
		}
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo, workplaceRepo, mail)
	workplaceHandler := handlers.NewWorkplaceHandler(workplaceRepo)
	badgeHandler := handlers.NewBadgeHandler(employeeRepo, cfg.BaseURL)
	aadharHandler := handlers.NewAadharHandler(
		handlers.NewDocumentHandler(aadharRepo, "aadhar", "Aadhar", notifyOwner("Aadhar card")), employeeRepo)
	panHandler := handlers.NewPanHandler(
		handlers.NewDocumentHandler(panRepo, "pan", "PAN", notifyOwner("PAN card")), employeeRepo)
	bankHandler := handlers.NewBankDetailHandler(
		handlers.NewDocumentHandler(bankRepo, "bankDetail", "Bank detail", notifyOwner("Bank detail")), employeeRepo)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Employee Onboarding System API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", "./uploads")

	auth := middleware.AuthMiddleware()
	anyRole := middleware.RequireRoles(models.RoleAdmin, models.RoleEmployeeManager, models.RoleSupervisor)
	managers := middleware.RequireRoles(models.RoleAdmin, models.RoleEmployeeManager)
	adminOnly := middleware.AdminMiddleware()

	// Session
	app.Post("/login", authHandler.Login)
	app.Post("/validatetoken", auth, authHandler.ValidateToken)
	app.Post("/changepassword", auth, authHandler.ChangePassword)
	app.Post("/logout", auth, authHandler.Logout)
	app.Post("/register", auth, adminOnly, authHandler.Register)

	// Employees. Path spellings (makrkapprove, approvaadhar, fetchbyitsownid)
	// are part of the panel's published contract and stay as-is.
	app.Post("/createemployee", auth, managers, employeeHandler.CreateEmployee)
	app.Post("/makrkapprove/:id", auth, adminOnly, employeeHandler.ApproveEmployee)
	app.Post("/markreject/:id", auth, adminOnly, employeeHandler.RejectEmployee)
	app.Get("/allpendingemployee", auth, anyRole, employeeHandler.AllPendingEmployees)
	app.Get("/allapprovedemployee", auth, anyRole, employeeHandler.AllApprovedEmployees)
	app.Get("/allrejectedemployee", auth, anyRole, employeeHandler.AllRejectedEmployees)
	app.Get("/fetchemployeebyid/:id", auth, anyRole, employeeHandler.FetchEmployeeByID)
	app.Get("/fetchapprovemployeebyid/:id", auth, anyRole, employeeHandler.FetchApprovedEmployeeByID)
	app.Put("/editpendingemployee/:id", auth, managers, employeeHandler.EditPendingEmployee)
	app.Put("/editapprovedemployee/:id", auth, managers, employeeHandler.EditApprovedEmployee)
	app.Delete("/deleteemployee/:id", auth, adminOnly, employeeHandler.DeleteEmployee)
	app.Post("/changeworkstatus/:id", auth, adminOnly, employeeHandler.ChangeWorkStatus)
	app.Get("/employeebadge/:id", auth, anyRole, badgeHandler.EmployeeBadge)

	// Aadhar
	app.Post("/createaadhar", auth, managers, aadharHandler.Create)
	app.Post("/approvaadhar/:id", auth, adminOnly, aadharHandler.Approve)
	app.Post("/rejectaadhar/:id", auth, adminOnly, aadharHandler.Reject)
	app.Get("/allpendingaadhar", auth, anyRole, aadharHandler.AllPending)
	app.Get("/allapprovedaadhar", auth, anyRole, aadharHandler.AllApproved)
	app.Get("/allrejectedaadhar", auth, anyRole, aadharHandler.AllRejected)
	app.Get("/fetchbyitsownid/:id", auth, anyRole, aadharHandler.FetchByOwner)
	app.Get("/fetchapprovaadharbyid/:id", auth, anyRole, aadharHandler.FetchApprovedByID)
	app.Put("/editpendingaadhar/:id", auth, managers, aadharHandler.EditPending)
	app.Put("/editapprovedaadhar/:id", auth, managers, aadharHandler.EditApproved)
	app.Delete("/deleteaadhar/:id", auth, adminOnly, aadharHandler.Delete)

	// PAN
	app.Post("/createpan", auth, managers, panHandler.Create)
	app.Post("/approvepan/:id", auth, adminOnly, panHandler.Approve)
	app.Post("/rejectpan/:id", auth, adminOnly, panHandler.Reject)
	app.Get("/allpendingpan", auth, anyRole, panHandler.AllPending)
	app.Get("/allapprovedpan", auth, anyRole, panHandler.AllApproved)
	app.Get("/allrejectedpan", auth, anyRole, panHandler.AllRejected)
	app.Get("/fetchpanbyitsownid/:id", auth, anyRole, panHandler.FetchByOwner)
	app.Get("/fetchapprovpanbyid/:id", auth, anyRole, panHandler.FetchApprovedByID)
	app.Put("/editpendingpan/:id", auth, managers, panHandler.EditPending)
	app.Put("/editapprovedpan/:id", auth, managers, panHandler.EditApproved)
	app.Delete("/deletepan/:id", auth, adminOnly, panHandler.Delete)

	// Bank details
	app.Post("/createbank", auth, managers, bankHandler.Create)
	app.Post("/approvebank/:id", auth, adminOnly, bankHandler.Approve)
	app.Post("/rejectbank/:id", auth, adminOnly, bankHandler.Reject)
	app.Get("/allpendingbank", auth, anyRole, bankHandler.AllPending)
	app.Get("/allapprovedbank", auth, anyRole, bankHandler.AllApproved)
	app.Get("/allrejectedbank", auth, anyRole, bankHandler.AllRejected)
	app.Get("/fetchbankbyitsownid/:id", auth, anyRole, bankHandler.FetchByOwner)
	app.Get("/fetchapprovbankbyid/:id", auth, anyRole, bankHandler.FetchApprovedByID)
	app.Put("/editpendingbank/:id", auth, managers, bankHandler.EditPending)
	app.Put("/editapprovedbank/:id", auth, managers, bankHandler.EditApproved)
	app.Delete("/deletebank/:id", auth, adminOnly, bankHandler.Delete)

	// Workplaces
	app.Post("/createworkplace", auth, adminOnly, workplaceHandler.CreateWorkplace)
	app.Get("/allworkplace", auth, anyRole, workplaceHandler.GetAllWorkplaces)
	app.Get("/fetchworkplacebyid/:id", auth, anyRole, workplaceHandler.GetWorkplaceByID)
	app.Put("/editworkplace/:id", auth, adminOnly, workplaceHandler.UpdateWorkplace)
	app.Delete("/deleteworkplace/:id", auth, adminOnly, workplaceHandler.DeleteWorkplace)

	log.Println("All application routes registered.")
	log.Println("Swagger documentation available at: /docs/index.html")
}
