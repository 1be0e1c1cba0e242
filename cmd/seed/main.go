// Command seed bootstraps an organization and its first admin user. Login is
// org-scoped, so a fresh deployment needs at least one of each before the API
// is usable.
package main

import (
	"context"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/repository/postgres"
)

func main() {
	var (
		orgName  = flag.String("org-name", "", "organization display name")
		orgSlug  = flag.String("org-slug", "", "organization slug used at login")
		email    = flag.String("email", "", "admin user email")
		password = flag.String("password", "", "admin user password (min 8 chars)")
		fullName = flag.String("full-name", "Administrator", "admin user full name")
	)
	flag.Parse()

	if *orgName == "" || *orgSlug == "" || *email == "" || len(*password) < 8 {
		log.Fatal("seed: -org-name, -org-slug, -email, and -password (min 8 chars) are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("seed: loading config: %v", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	orgRepo := postgres.NewOrganizationRepo(db)
	userRepo := postgres.NewUserRepo(db)

	org := &domain.Organization{
		Name:     *orgName,
		Slug:     *orgSlug,
		IsActive: true,
	}
	if err := orgRepo.Create(ctx, org); err != nil {
		log.Fatalf("seed: creating organization: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: hashing password: %v", err)
	}

	admin := &domain.User{
		OrganizationID: org.ID,
		Email:          *email,
		PasswordHash:   string(hash),
		FullName:       *fullName,
		Role:           domain.RoleAdmin,
		IsActive:       true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("seed: creating admin user: %v", err)
	}

	log.Printf("seed: created organization %s (%s) with admin %s", org.Slug, org.ID, admin.Email)
}
