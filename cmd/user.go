package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"medinote/cmd/bootstrap"
	"medinote/config"
	"medinote/internal/delivery/dto"
	"medinote/internal/infrastructure/database"
	"medinote/internal/repository"
	"medinote/internal/usecase"
	"medinote/pkg/validator"

	"github.com/spf13/cobra"
)

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserCreateCommand())
	return cmd
}

func newUserCreateCommand() *cobra.Command {
	var req dto.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a doctor or admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := bootstrap.SetupLogger(cfg.Log)

			db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			userUsecase := usecase.NewUserUsecase(log, repository.NewUserRepository(db), validator.NewValidator())
			user, err := userUsecase.CreateUser(cmd.Context(), &req)
			if err != nil {
				if vErr, ok := usecase.AsValidationError(err); ok {
					return errors.New(formatFieldErrors(vErr.Fields))
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", user.Role, user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&req.Role, "role", "doctor", "doctor or admin")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}

func formatFieldErrors(fields map[string]string) string {
	msgs := make([]string, 0, len(fields))
	for _, msg := range fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return "invalid input: " + strings.Join(msgs, "; ")
}
