package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_insights/internal/app/di"
	"stock_insights/internal/app/router"
	candlesadapters "stock_insights/internal/feature/candles/adapters"
	candleshandler "stock_insights/internal/feature/candles/transport/handler"
	candlesusecase "stock_insights/internal/feature/candles/usecase"
	earningsadapters "stock_insights/internal/feature/earnings/adapters"
	earningshandler "stock_insights/internal/feature/earnings/transport/handler"
	earningsusecase "stock_insights/internal/feature/earnings/usecase"
	eventsadapters "stock_insights/internal/feature/events/adapters"
	eventshandler "stock_insights/internal/feature/events/transport/handler"
	eventsusecase "stock_insights/internal/feature/events/usecase"
	gapsadapters "stock_insights/internal/feature/gaps/adapters"
	gapshandler "stock_insights/internal/feature/gaps/transport/handler"
	gapsusecase "stock_insights/internal/feature/gaps/usecase"
	tickersadapters "stock_insights/internal/feature/tickers/adapters"
	tickershandler "stock_insights/internal/feature/tickers/transport/handler"
	tickersusecase "stock_insights/internal/feature/tickers/usecase"
	"stock_insights/internal/platform/cache"
	"stock_insights/internal/platform/config"
	platformdb "stock_insights/internal/platform/db"
	platformredis "stock_insights/internal/platform/redis"
	"stock_insights/internal/platform/session"
)

func main() {
	// .envは開発用。存在しなくても問題ありません。
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		log.Fatal("config: ", err)
	}

	// 銘柄ごとのSQLiteシャードを開きます。
	shards, err := platformdb.OpenShards(cfg.Data.ShardDir, cfg.Tickers)
	if err != nil {
		log.Fatal("shards: ", err)
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Addr == "" {
		log.Println("[WARN] Redis not configured. Sessions and quotas run in-process.")
	} else if tmp, err := platformredis.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions and quotas run in-process.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Registry（ルータ起動前に必ず初期化します）
	registry := tickersusecase.NewRegistry(cfg.Tickers, tickersadapters.NewShardProber(shards))
	if err := registry.Initialize(context.Background()); err != nil {
		log.Fatal("ticker registry: ", err)
	}

	// Repository / Dataset
	// Redisキャッシュでラップ（Redisなしの場合は素通し）
	var candleRepo candlesusecase.ShardRepository = candlesadapters.NewCandleRepository(shards)
	candleRepo = cache.NewCachingShardRepository(rdb, 0, candleRepo, "candles")
	gapDataset := gapsadapters.NewGapDataset(cfg.Data.GapFile)
	newsDataset := eventsadapters.NewNewsDataset(cfg.Data.EventsFile)
	economicDataset := eventsadapters.NewEconomicDataset(cfg.Data.EconomicEventsFile)
	earningsDataset := earningsadapters.NewEarningsDataset(cfg.Data.EarningsFile)

	// Usecase
	candlesUC := candlesusecase.NewStoreUsecase(candleRepo, registry)
	gapsUC := gapsusecase.NewGapsUsecase(gapDataset)
	eventsUC := eventsusecase.NewEventsUsecase(newsDataset, economicDataset)
	earningsUC := earningsusecase.NewEarningsUsecase(earningsDataset, registry)

	// Session / Quota
	resolver := session.NewResolver(di.NewSessionStore(rdb, cfg.Session.TTL))
	gate := di.NewQuotaGate(rdb, cfg.Quota)

	// Handler
	handlers := router.Handlers{
		Tickers:  tickershandler.NewTickerHandler(registry),
		Candles:  candleshandler.NewCandlesHandler(candlesUC),
		Gaps:     gapshandler.NewGapHandler(gapsUC),
		Events:   eventshandler.NewEventHandler(eventsUC),
		Earnings: earningshandler.NewEarningsHandler(earningsUC),
	}

	r := router.NewRouter(handlers, resolver, gate)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
