package store_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/config"
	"github.com/webcalc/calculation-service/internal/store"
	"github.com/webcalc/calculation-service/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertUserStm = "INSERT INTO users (id, username, email) VALUES ('%s', '%s', '%s');"
)

var _ = Describe("user store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		cfg, err := config.New()
		Expect(err).To(BeNil())
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM calculations;")
		gormdb.Exec("DELETE FROM users;")
	})

	Context("list", func() {
		It("successfully lists all the users", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, uuid.NewString(), "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertUserStm, uuid.NewString(), "bob", "bob@example.com"))
			Expect(tx.Error).To(BeNil())

			users, err := s.User().List(context.TODO(), store.NewUserQueryFilter())
			Expect(err).To(BeNil())
			Expect(users).To(HaveLen(2))
		})

		It("lists all users -- no users", func() {
			users, err := s.User().List(context.TODO(), store.NewUserQueryFilter())
			Expect(err).To(BeNil())
			Expect(users).To(HaveLen(0))
		})

		It("successfully filters by username", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, uuid.NewString(), "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertUserStm, uuid.NewString(), "bob", "bob@example.com"))
			Expect(tx.Error).To(BeNil())

			users, err := s.User().List(context.TODO(), store.NewUserQueryFilter().ByUsername("alice"))
			Expect(err).To(BeNil())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Email).To(Equal("alice@example.com"))
		})

		It("successfully filters by email", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, uuid.NewString(), "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			users, err := s.User().List(context.TODO(), store.NewUserQueryFilter().ByEmail("alice@example.com"))
			Expect(err).To(BeNil())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Username).To(Equal("alice"))
		})
	})

	Context("get", func() {
		It("successfully gets a user", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, id, "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			user, err := s.User().Get(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("alice"))
			Expect(user.Email).To(Equal("alice@example.com"))
		})

		It("fails to get a user -- user does not exist", func() {
			_, err := s.User().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("create", func() {
		It("successfully creates a user", func() {
			user, err := s.User().Create(context.TODO(), model.User{
				ID:       uuid.New(),
				Username: "alice",
				Email:    "alice@example.com",
			})
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("alice"))

			count := 0
			tx := gormdb.Raw("SELECT count(*) FROM users;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("fails to create a user -- duplicate username", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, uuid.NewString(), "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			_, err := s.User().Create(context.TODO(), model.User{
				ID:       uuid.New(),
				Username: "alice",
				Email:    "other@example.com",
			})
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})

		It("fails to create a user -- duplicate email", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, uuid.NewString(), "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			_, err := s.User().Create(context.TODO(), model.User{
				ID:       uuid.New(),
				Username: "alice2",
				Email:    "alice@example.com",
			})
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})
	})

	Context("update", func() {
		It("successfully updates a user's email", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, id, "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			user, err := s.User().Update(context.TODO(), model.User{ID: id, Email: "new@example.com"})
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("alice"))
			Expect(user.Email).To(Equal("new@example.com"))
		})

		It("fails to update a user -- user does not exist", func() {
			_, err := s.User().Update(context.TODO(), model.User{ID: uuid.New(), Email: "new@example.com"})
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("delete", func() {
		It("successfully deletes a user", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, id, "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())

			err := s.User().Delete(context.TODO(), id)
			Expect(err).To(BeNil())

			count := 1
			tx = gormdb.Raw("SELECT count(*) FROM users;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("fails to delete a user -- user does not exist", func() {
			err := s.User().Delete(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		It("deleting a user cascades to its calculations", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, id, "alice", "alice@example.com"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), id, "addition", "[1, 2]", 3.0))
			Expect(tx.Error).To(BeNil())

			err := s.User().Delete(context.TODO(), id)
			Expect(err).To(BeNil())

			count := 1
			tx = gormdb.Raw("SELECT count(*) FROM calculations;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})
	})
})
