package service_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/config"
	"github.com/webcalc/calculation-service/internal/service"
	"github.com/webcalc/calculation-service/internal/service/mappers"
	"github.com/webcalc/calculation-service/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("user service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		svc    *service.UserService
	)

	BeforeAll(func() {
		cfg, err := config.New()
		Expect(err).To(BeNil())
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
		svc = service.NewUserService(s)
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM calculations;")
		gormdb.Exec("DELETE FROM users;")
	})

	Context("CreateUser", func() {
		It("creates a user", func() {
			user, err := svc.CreateUser(context.TODO(), mappers.UserCreateForm{
				Username: "alice",
				Email:    "alice@example.com",
			})
			Expect(err).To(BeNil())
			Expect(user.ID).ToNot(Equal(uuid.Nil))
			Expect(user.Username).To(Equal("alice"))
		})

		It("rejects a duplicate username", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, uuid.NewString(), "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			_, err := svc.CreateUser(context.TODO(), mappers.UserCreateForm{
				Username: "alice",
				Email:    "second@example.com",
			})
			Expect(err).ToNot(BeNil())
			_, ok := err.(*service.ErrDuplicateUser)
			Expect(ok).To(BeTrue())
		})
	})

	Context("GetUser", func() {
		It("gets a user", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, id, "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			user, err := svc.GetUser(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("alice"))
		})

		It("fails for a missing user", func() {
			_, err := svc.GetUser(context.TODO(), uuid.New())
			Expect(err).ToNot(BeNil())
			_, ok := err.(*service.ErrResourceNotFound)
			Expect(ok).To(BeTrue())
		})
	})

	Context("UpdateUser", func() {
		It("updates the email only", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, id, "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			user, err := svc.UpdateUser(context.TODO(), mappers.UserUpdateForm{ID: id, Email: "new@example.com"})
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("alice"))
			Expect(user.Email).To(Equal("new@example.com"))
		})
	})

	Context("DeleteUser", func() {
		It("deletes the user and its calculations", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, id, "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), id, "addition", "[1, 2]", 3.0))
			Expect(tx.Error).To(BeNil())

			Expect(svc.DeleteUser(context.TODO(), id)).To(BeNil())

			count := 1
			tx = gormdb.Raw("SELECT count(*) FROM calculations;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("fails for a missing user", func() {
			err := svc.DeleteUser(context.TODO(), uuid.New())
			Expect(err).ToNot(BeNil())
			_, ok := err.(*service.ErrResourceNotFound)
			Expect(ok).To(BeTrue())
		})
	})
})
