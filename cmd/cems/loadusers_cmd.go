package main

import (
	"github.com/spf13/cobra"

	appRepos "github.com/duhai-alshukaili/cems/internal/app/repositories"
	"github.com/duhai-alshukaili/cems/internal/bootstrap"
	"github.com/duhai-alshukaili/cems/internal/db"
	"github.com/duhai-alshukaili/cems/internal/importer"
)

func newLoadUsersCmd() *cobra.Command {
	var auditPath string

	cmd := &cobra.Command{
		Use:   "loadusers <report-file>",
		Short: "Bulk-load departments, users, courses and sections from an Examination List Report",
		Long: `loadusers reads an Examination List Report (.csv or .xlsx), purges all
previously imported students, lecturers, courses and sections, and recreates
them from the report. Departments are cumulative and survive between runs.
Issued credentials are appended to the audit log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
			if err != nil {
				return err
			}

			database, err := db.NewPostgresDB(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := bootstrap.RunMigrations(database.Pool, lgr); err != nil {
				return err
			}

			if auditPath == "" {
				auditPath = cfg.Import.AuditLogPath
			}

			audit, err := importer.OpenAuditLog(auditPath)
			if err != nil {
				return err
			}
			defer audit.Close()

			repos := appRepos.NewRepositories(database.Pool)
			imp := importer.New(repos, importer.NewPasswordGenerator(), audit, cfg.Import.EmailDomain, lgr)

			sum, err := imp.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			lgr.Info().
				Int("rows", sum.Rows).
				Int("departments", sum.DepartmentsCreated).
				Int("students", sum.StudentsCreated).
				Int("lecturers", sum.LecturersCreated).
				Int("courses", sum.CoursesCreated).
				Int("sections", sum.SectionsCreated).
				Str("auditLog", auditPath).
				Msg("Load complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&auditPath, "audit-log", "", "Path of the credential audit log (default from config)")

	return cmd
}
