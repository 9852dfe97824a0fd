package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kyc-chain.backend/internal/config"
	"kyc-chain.backend/internal/domain/entities"
	"kyc-chain.backend/internal/infrastructure/models"
	"kyc-chain.backend/internal/infrastructure/repositories"
	"kyc-chain.backend/internal/usecases"
)

// Demo accounts (hardhat default keys)
var (
	owner  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	admin1 = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	admin2 = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	bank1  = "0x90F79bf6EB2c4f870365E785982E1f101E93b906"
	bank2  = "0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65"
	bank3  = "0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc"
)

var vcHash = "0x0000000000000000000000000000000000000000000000000000000000000000"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Owner{},
		&models.Admin{},
		&models.Bank{},
		&models.Customer{},
		&models.Record{},
		&models.AccessRequest{},
		&models.Grant{},
		&models.HistoryEntry{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	roleRepo := repositories.NewRoleRepository(db)
	bankRepo := repositories.NewBankRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	recordRepo := repositories.NewRecordRepository(db)
	requestRepo := repositories.NewAccessRequestRepository(db)
	grantRepo := repositories.NewGrantRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)
	uow := repositories.NewUnitOfWork(db)

	guard := usecases.NewAccessControl(roleRepo, bankRepo, grantRepo)
	locks := usecases.NewKeyedMutex()

	roleUsecase := usecases.NewRoleUsecase(roleRepo, guard, nil)
	bankUsecase := usecases.NewBankUsecase(bankRepo, requestRepo, grantRepo, guard, nil)
	customerUsecase := usecases.NewCustomerUsecase(customerRepo, recordRepo, guard, uow, locks, nil)
	accessUsecase := usecases.NewAccessUsecase(customerRepo, bankRepo, requestRepo, grantRepo, guard, uow, locks, nil)
	statusUsecase := usecases.NewStatusUsecase(customerRepo, historyRepo, guard, uow, locks, nil)

	ctx := context.Background()

	log.Println("Seeding registry...")

	must(roleUsecase.Bootstrap(ctx, owner))
	log.Println("Owner:", owner)

	mustIgnoreConflict(seedAdmin(ctx, roleUsecase, admin1))
	mustIgnoreConflict(seedAdmin(ctx, roleUsecase, admin2))
	log.Println("Admins added")

	banks := []struct {
		name    string
		address string
	}{
		{"Global Trust Bank", bank1},
		{"Secure Finance Corp", bank2},
		{"Digital Banking Ltd", bank3},
	}
	for _, b := range banks {
		_, err := bankUsecase.AddBank(ctx, admin1, &entities.AddBankInput{Name: b.name, Address: b.address})
		mustIgnoreConflict(err)
		must(bankUsecase.SetApproval(ctx, admin1, b.address, true))
		log.Println("Bank added:", b.name)
	}

	customers := []*entities.AddCustomerInput{
		{Name: "Alice Johnson", PAN: "ABCDE1234F", KycID: "KYC001", Doc1Hash: "QmX1abc...def123", Doc2Hash: "QmY2def...ghi456", CredentialHash: vcHash},
		{Name: "Bob Williams", PAN: "XYZAB5678C", KycID: "KYC002", Doc1Hash: "QmZ3ghi...jkl789", Doc2Hash: "QmA4jkl...mno012", CredentialHash: vcHash},
		{Name: "Carol Martinez", PAN: "PQRST9012D", KycID: "KYC003", Doc1Hash: "QmA4jkl...mno012", Doc2Hash: "QmB5mno...pqr345", CredentialHash: vcHash},
		{Name: "David Chen", PAN: "LMNOP3456E", KycID: "KYC004", Doc1Hash: "QmB5mno...pqr345", Doc2Hash: "QmC6pqr...stu678", CredentialHash: vcHash},
	}
	for _, c := range customers {
		_, err := customerUsecase.AddCustomer(ctx, admin1, c)
		mustIgnoreConflict(err)
		log.Println("Customer added:", c.KycID)
	}

	_, err = customerUsecase.AddRecord(ctx, admin1, "KYC001", &entities.AddRecordInput{RecordType: "Address Proof", DocumentHash: "QmY2def...ghi456"})
	must(err)
	_, err = customerUsecase.AddRecord(ctx, admin1, "KYC004", &entities.AddRecordInput{RecordType: "Financial Statement", DocumentHash: "QmC6pqr...stu678"})
	must(err)
	log.Println("Extra records added")

	_, err = accessUsecase.RequestAccess(ctx, bank3, "KYC003")
	mustIgnoreConflict(err)
	log.Println("Access requested: Digital Banking Ltd -> KYC003")

	grants := []struct{ kycID, bank string }{
		{"KYC001", bank1},
		{"KYC002", bank2},
		{"KYC004", bank1},
	}
	for _, g := range grants {
		_, err := accessUsecase.GrantAccess(ctx, admin1, g.kycID, g.bank)
		mustIgnoreConflict(err)
		log.Println("Access granted:", g.bank, "->", g.kycID)
	}

	now := time.Now().Unix()
	verdicts := []struct {
		actor, kycID, bankName, remarks string
		verdict                         entities.KycStatus
	}{
		{bank1, "KYC001", "Global Trust Bank", "All documents verified successfully", entities.KycStatusAccepted},
		{bank2, "KYC002", "Secure Finance Corp", "Incomplete documentation provided", entities.KycStatusRejected},
		{bank1, "KYC004", "Global Trust Bank", "Customer profile verified and approved", entities.KycStatusAccepted},
	}
	for _, v := range verdicts {
		_, err := statusUsecase.UpdateStatus(ctx, v.actor, v.kycID, &entities.UpdateStatusInput{
			BankName:       v.bankName,
			Remarks:        v.remarks,
			Timestamp:      now,
			Verdict:        v.verdict,
			CredentialHash: vcHash,
		})
		if err != nil {
			log.Printf("status update skipped for %s: %v", v.kycID, err)
			continue
		}
		log.Printf("%s status updated to %s", v.kycID, v.verdict)
	}

	log.Println("✅ Seeding completed successfully!")
}

func seedAdmin(ctx context.Context, u *usecases.RoleUsecase, address string) error {
	_, err := u.AddAdmin(ctx, owner, address)
	return err
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func mustIgnoreConflict(err error) {
	if err == nil {
		return
	}
	log.Printf("skipped: %v", err)
}
