package main

import (
	"time"

	"markethub/internal/config"
	"markethub/internal/domain/model"
	"markethub/internal/events"
	"markethub/internal/handler"
	"markethub/internal/infra/db"
	infraRepo "markethub/internal/infra/repository"
	"markethub/internal/server"
	"markethub/internal/usecase"
	"markethub/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.WishlistItem{},
		&model.InventoryAdjustment{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	authValidator := validator.NewAuthValidator()

	//Kafka（ブローカー未設定ならnilで無効）
	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, authValidator)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, inventoryRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, clock, idGen)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo, cartRepo)
	profileUC := usecase.NewProfileUsecase(userRepo, reviewRepo)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo)

	//Handler生成＋ルート登録
	e := server.New()

	handler.NewAuthHandler(authUC).RegisterRoutes(e)
	handler.NewProductHandler(productUC).RegisterRoutes(e)
	handler.NewCategoryHandler(categoryUC).RegisterRoutes(e)
	handler.NewCartHandler(cartUC).RegisterRoutes(e, cfg)
	handler.NewOrderHandler(orderUC, producer).RegisterRoutes(e, cfg)
	handler.NewReviewHandler(reviewUC).RegisterRoutes(e, cfg)
	handler.NewWishlistHandler(wishlistUC).RegisterRoutes(e, cfg)
	handler.NewProfileHandler(profileUC).RegisterRoutes(e, cfg)
	handler.NewAdminUserHandler(adminUserUC).RegisterRoutes(e, cfg)
	handler.NewAdminProductHandler(productUC, categoryUC).RegisterRoutes(e, cfg)
	handler.NewAdminOrderHandler(orderUC).RegisterRoutes(e, cfg)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e.Logger.Fatal(e.Start(addr))
}
