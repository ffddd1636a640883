package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/madrasaty/exam-backend/internal/config"
	"github.com/madrasaty/exam-backend/internal/database"
	"github.com/madrasaty/exam-backend/internal/logger"
	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
	"github.com/madrasaty/exam-backend/internal/store/postgres"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	st := postgres.NewStore(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Teacher ===")

	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// The login code is the teacher's only credential, so read it without
	// echoing to the terminal.
	fmt.Print("Enter Login Code: ")
	byteCode, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading login code")
		return
	}
	code := strings.TrimSpace(string(byteCode))
	fmt.Println()
	if len(code) < 4 {
		fmt.Println("Error: Login code must be at least 4 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	teacher := &model.Teacher{Name: name, Code: code}
	if err := st.CreateTeacher(ctx, teacher); err != nil {
		if errors.Is(err, store.ErrDuplicateTeacherCode) {
			fmt.Println("Error: This login code is already taken")
			return
		}
		log.Fatal().Err(err).Msg("Failed to create teacher")
	}

	fmt.Printf("\nSuccess! Teacher '%s' created with ID: %d\n", teacher.Name, teacher.ID)
}
