package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/apenask/csnutri-server/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "down" {
		if err := database.RollbackMigration(); err != nil {
			log.Fatalf("Erro ao reverter migração: %v", err)
		}
		log.Println("Migração revertida com sucesso!")
		return
	}

	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
	log.Println("Migrações executadas com sucesso!")
}
