package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/payment"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

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
	//.envはローカル用。無ければ環境変数だけで動く。
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Shop{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	shopRepo := infraRepo.NewShopGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//決済ゲートウェイ
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	shopUC := usecase.NewShopUsecase(shopRepo)
	orderUC := usecase.NewOrderUsecase(txManager, shopRepo, idGen, clock, cfg.TaxRate, cfg.Currency)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, gateway, cfg.FEURL)
	webhookUC := usecase.NewWebhookUsecase(txManager)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	shopH := handler.NewShopHandler(shopUC)
	orderH := handler.NewOrderHandler(orderUC)
	stripeH := handler.NewStripeHandler(checkoutUC, webhookUC, cfg)

	//Server起動
	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, userRepo, productH, shopH, orderH, stripeH); err != nil {
		panic(err)
	}
}
