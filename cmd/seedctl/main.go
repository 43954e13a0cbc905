// cmd/seedctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rushilcs/data-viewer/internal/auth"
	"github.com/rushilcs/data-viewer/internal/config"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/repository"
)

var (
	orgName   string
	userEmail string
	userPass  string
	userRole  string
	verbose   bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	createOrgCmd.Flags().StringVarP(&orgName, "name", "n", "", "Organization name")
	createOrgCmd.MarkFlagRequired("name")

	createUserCmd.Flags().StringVarP(&userEmail, "email", "e", "", "User email")
	createUserCmd.Flags().StringVarP(&userPass, "password", "p", "", "User password")
	createUserCmd.Flags().StringVarP(&userRole, "role", "r", "viewer", "User role (admin, publisher, viewer)")
	createUserCmd.MarkFlagRequired("email")
	createUserCmd.MarkFlagRequired("password")

	demoCmd.Flags().StringVarP(&userPass, "password", "p", "changeme", "Password for the demo users")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createOrgCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(demoCmd)
}

var rootCmd = &cobra.Command{
	Use:   "seedctl",
	Short: "seedctl bootstraps a deployment",
	Long:  `seedctl runs schema migration and creates the initial organization and users.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema auto-migration",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		err := db.AutoMigrate(
			&model.Organization{},
			&model.User{},
			&model.Dataset{},
			&model.Asset{},
			&model.Item{},
			&model.Annotation{},
			&model.DatasetAccess{},
			&model.PendingDatasetShare{},
			&model.AuditEvent{},
		)
		if err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Migration complete")
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create-org",
	Short: "Create an organization",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		org := &model.Organization{Name: orgName}
		if err := repository.NewOrganizationRepository(db).Create(context.Background(), org); err != nil {
			log.Fatalf("Failed to create organization: %v", err)
		}
		fmt.Printf("Created organization %s (%s)\n", org.Name, org.ID)
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create-user [org-id]",
	Short: "Create a user in an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		orgID, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid org id: %v", err)
		}
		role := model.UserRole(userRole)
		switch role {
		case model.RoleAdmin, model.RolePublisher, model.RoleViewer:
		default:
			log.Fatalf("Invalid role %q", userRole)
		}

		hash, err := auth.NewPasswordHasher().Hash(userPass)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		db := mustOpenDB()
		user := &model.User{
			OrgID:        orgID,
			Email:        userEmail,
			PasswordHash: hash,
			Role:         role,
			IsActive:     true,
		}
		if _, err := repository.NewUserRepository(db).CreateWithPendingShares(context.Background(), user); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		fmt.Printf("Created user %s (%s) with role %s\n", user.Email, user.ID, user.Role)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed a demo organization with one user per role and a draft dataset",
	Run: func(cmd *cobra.Command, args []string) {
		hash, err := auth.NewPasswordHasher().Hash(userPass)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		db := mustOpenDB()
		ctx := context.Background()

		org := &model.Organization{Name: "Demo Org"}
		if err := repository.NewOrganizationRepository(db).Create(ctx, org); err != nil {
			log.Fatalf("Failed to create demo organization: %v", err)
		}
		fmt.Printf("Created organization %s (%s)\n", org.Name, org.ID)

		users := repository.NewUserRepository(db)
		byRole := make(map[model.UserRole]*model.User, 3)
		for _, role := range []model.UserRole{model.RoleAdmin, model.RolePublisher, model.RoleViewer} {
			user := &model.User{
				OrgID:        org.ID,
				Email:        fmt.Sprintf("%s@demo.test", role),
				PasswordHash: hash,
				Role:         role,
				IsActive:     true,
			}
			if _, err := users.CreateWithPendingShares(ctx, user); err != nil {
				log.Fatalf("Failed to create demo user %s: %v", user.Email, err)
			}
			byRole[role] = user
			fmt.Printf("Created user %s (%s)\n", user.Email, user.ID)
		}

		dataset := &model.Dataset{
			OrgID:           org.ID,
			Name:            "Demo Dataset",
			Description:     "Empty draft for trying out the ingest flow",
			CreatedByUserID: byRole[model.RolePublisher].ID,
		}
		if err := repository.NewDatasetRepository(db).Create(ctx, dataset); err != nil {
			log.Fatalf("Failed to create demo dataset: %v", err)
		}
		fmt.Printf("Created dataset %s (%s)\n", dataset.Name, dataset.ID)

		access := &model.DatasetAccess{
			OrgID:           org.ID,
			DatasetID:       dataset.ID,
			UserID:          byRole[model.RoleViewer].ID,
			CreatedByUserID: byRole[model.RolePublisher].ID,
		}
		if _, err := repository.NewAccessRepository(db).Grant(ctx, access); err != nil {
			log.Fatalf("Failed to share demo dataset: %v", err)
		}
		fmt.Printf("Shared dataset with %s\n", byRole[model.RoleViewer].Email)
	},
}

func mustOpenDB() *gorm.DB {
	cfg := config.Load()
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	level := gormlogger.Silent
	if verbose {
		level = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
