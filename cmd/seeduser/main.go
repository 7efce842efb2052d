// cmd/seeduser creates or updates an operator account.
// Usage: seeduser --email admin@kiosco.local --password secreto [--nombre Admin] [--rol administrador]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"kiosco/internal/config"
	"kiosco/internal/infra"
	"kiosco/internal/model"
	"kiosco/internal/repository"
	"kiosco/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dbURL    string
	email    string
	password string
	nombre   string
	rol      string
)

var rootCmd = &cobra.Command{
	Use:   "seeduser",
	Short: "Create or update an operator account",
	Long: `Create an operator account, or reset the name, role and password of an
existing one with the same email. The password is stored as a bcrypt hash.

The database defaults to DATABASE_URL (or the local SQLite file).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&dbURL, "db", "", "Database URL or SQLite path (default: DATABASE_URL)")
	rootCmd.Flags().StringVar(&email, "email", "", "Operator email (required)")
	rootCmd.Flags().StringVar(&password, "password", "", "Operator password (required)")
	rootCmd.Flags().StringVar(&nombre, "nombre", "Administrador", "Display name")
	rootCmd.Flags().StringVar(&rol, "rol", service.RolAdministrador, "Role: usuario | administrador")
	_ = rootCmd.MarkFlagRequired("email")
	_ = rootCmd.MarkFlagRequired("password")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSeed(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if rol != service.RolUsuario && rol != service.RolAdministrador {
		return fmt.Errorf("rol invalido: %q", rol)
	}

	dsn := dbURL
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		dsn = cfg.DatabaseURL
	}
	db, err := infra.NewDatabase(dsn)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("bcrypt: %w", err)
	}

	repo := repository.NewUsuarioRepository(db)
	addr := strings.TrimSpace(email)
	user, err := repo.FindByEmail(ctx, addr)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &model.Usuario{Nombre: nombre, Email: addr, Password: hash, Rol: rol}
		if err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		fmt.Printf("Usuario %q creado (id %d, rol %s)\n", addr, user.ID, rol)
	case err != nil:
		return fmt.Errorf("lookup: %w", err)
	default:
		user.Nombre = nombre
		user.Password = hash
		user.Rol = rol
		if err := repo.Update(ctx, user); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		fmt.Printf("Usuario %q actualizado (id %d, rol %s)\n", addr, user.ID, rol)
	}
	return nil
}
