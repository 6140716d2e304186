package service_test

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	service "github.com/okian/skycard/internal/app"
	"github.com/okian/skycard/internal/app/mocks"
	"github.com/okian/skycard/internal/domain/model"
	"github.com/okian/skycard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

type fixture struct {
	directory *mocks.MockDirectory
	profiles  *mocks.MockProfileSource
	weights   *mocks.MockWeightSource
	avatars   *mocks.MockAvatarSource
	renderer  *mocks.MockCardRenderer
	svc       *service.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		directory: mocks.NewMockDirectory(ctrl),
		profiles:  mocks.NewMockProfileSource(ctrl),
		weights:   mocks.NewMockWeightSource(ctrl),
		avatars:   mocks.NewMockAvatarSource(ctrl),
		renderer:  mocks.NewMockCardRenderer(ctrl),
	}
	svc, err := service.New(
		service.WithDirectory(f.directory),
		service.WithProfiles(f.profiles),
		service.WithWeights(f.weights),
		service.WithAvatars(f.avatars),
		service.WithRenderer(f.renderer),
	)
	if err != nil {
		t.Fatal(err)
	}
	f.svc = svc
	return f
}

var (
	player  = model.PlayerIdentity{Name: "Notch", ID: "069a79f444e94726a5befca90e38aaf5"}
	profile = model.GameProfile{Name: "Banana", LastSave: 42}
	weight  = model.WeightScore{Total: 21034.6}
	avatar  = image.NewRGBA(image.Rect(0, 0, 50, 50))
	card    = image.NewRGBA(image.Rect(0, 0, 800, 400))
)

func TestService_New(t *testing.T) {
	Convey("Given a service without a renderer", t, func() {
		ctrl := gomock.NewController(t)
		_, err := service.New(
			service.WithDirectory(mocks.NewMockDirectory(ctrl)),
			service.WithProfiles(mocks.NewMockProfileSource(ctrl)),
			service.WithWeights(mocks.NewMockWeightSource(ctrl)),
			service.WithAvatars(mocks.NewMockAvatarSource(ctrl)),
		)

		Convey("Then construction fails naming the missing dependency", func() {
			So(errors.Is(err, service.ErrMissingDependency), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "renderer")
		})
	})

	Convey("Given no options at all", t, func() {
		_, err := service.New()

		Convey("Then the directory is reported first", func() {
			So(err.Error(), ShouldContainSubstring, "directory")
		})
	})
}

func TestService_Card(t *testing.T) {
	Convey("Given a service with mocked sources", t, func() {
		f := newFixture(t)
		ctx := context.Background()

		Convey("When every fetch succeeds", func() {
			f.directory.EXPECT().Resolve(gomock.Any(), "Notch").Return(player, nil)
			f.profiles.EXPECT().LatestProfile(gomock.Any(), player).Return(profile, nil)
			f.weights.EXPECT().Weight(gomock.Any(), player).Return(weight, nil)
			f.avatars.EXPECT().Avatar(gomock.Any(), player).Return(avatar, nil)
			f.renderer.EXPECT().Render(player, profile, weight, avatar).Return(card)

			img, err := f.svc.Card(ctx, "Notch")

			Convey("Then the rendered card is returned", func() {
				So(err, ShouldBeNil)
				So(img, ShouldPointTo, card)
			})
		})

		Convey("When the username cannot be resolved", func() {
			f.directory.EXPECT().Resolve(gomock.Any(), "Nobody").Return(model.PlayerIdentity{}, errors.New("404"))

			img, err := f.svc.Card(ctx, "Nobody")

			Convey("Then it fails at the identity stage without fetching anything", func() {
				So(img, ShouldBeNil)
				So(service.Stage(err), ShouldEqual, service.StageIdentity)
			})
		})

		Convey("When the weight service fails", func() {
			cause := errors.New("failed to get weight: 200")
			f.directory.EXPECT().Resolve(gomock.Any(), "Notch").Return(player, nil)
			f.profiles.EXPECT().LatestProfile(gomock.Any(), player).Return(profile, nil).AnyTimes()
			f.weights.EXPECT().Weight(gomock.Any(), player).Return(model.WeightScore{}, cause)
			f.avatars.EXPECT().Avatar(gomock.Any(), player).Return(avatar, nil).AnyTimes()

			img, err := f.svc.Card(ctx, "Notch")

			Convey("Then it fails at the weight stage and nothing is rendered", func() {
				So(img, ShouldBeNil)
				So(service.Stage(err), ShouldEqual, service.StageWeight)
				So(errors.Is(err, cause), ShouldBeTrue)
			})
		})

		Convey("When the profile fetch fails while the avatar is still in flight", func() {
			cause := errors.New("no profiles")
			var cancelled bool
			f.directory.EXPECT().Resolve(gomock.Any(), "Notch").Return(player, nil)
			f.profiles.EXPECT().LatestProfile(gomock.Any(), player).Return(model.GameProfile{}, cause)
			f.weights.EXPECT().Weight(gomock.Any(), player).Return(weight, nil).AnyTimes()
			f.avatars.EXPECT().Avatar(gomock.Any(), player).DoAndReturn(
				func(ctx context.Context, _ model.PlayerIdentity) (*image.RGBA, error) {
					select {
					case <-ctx.Done():
						cancelled = true
						return nil, ctx.Err()
					case <-time.After(5 * time.Second):
						return avatar, nil
					}
				})

			img, err := f.svc.Card(ctx, "Notch")

			Convey("Then the first failure wins and the in-flight fetch is cancelled", func() {
				So(img, ShouldBeNil)
				So(service.Stage(err), ShouldEqual, service.StageProfile)
				So(errors.Is(err, cause), ShouldBeTrue)
				So(cancelled, ShouldBeTrue)
			})
		})

		Convey("When the three fetches are issued", func() {
			var started sync.WaitGroup
			started.Add(3)
			all := make(chan struct{})
			go func() {
				started.Wait()
				close(all)
			}()
			// Each fetch only returns once all three are running.
			barrier := func() error {
				started.Done()
				select {
				case <-all:
					return nil
				case <-time.After(2 * time.Second):
					return errors.New("fetches did not overlap")
				}
			}

			f.directory.EXPECT().Resolve(gomock.Any(), "Notch").Return(player, nil)
			f.profiles.EXPECT().LatestProfile(gomock.Any(), player).DoAndReturn(
				func(context.Context, model.PlayerIdentity) (model.GameProfile, error) {
					return profile, barrier()
				})
			f.weights.EXPECT().Weight(gomock.Any(), player).DoAndReturn(
				func(context.Context, model.PlayerIdentity) (model.WeightScore, error) {
					return weight, barrier()
				})
			f.avatars.EXPECT().Avatar(gomock.Any(), player).DoAndReturn(
				func(context.Context, model.PlayerIdentity) (*image.RGBA, error) {
					return avatar, barrier()
				})
			f.renderer.EXPECT().Render(player, profile, weight, avatar).Return(card)

			img, err := f.svc.Card(ctx, "Notch")

			Convey("Then they run concurrently", func() {
				So(err, ShouldBeNil)
				So(img, ShouldPointTo, card)
			})
		})
	})
}

func TestStageError(t *testing.T) {
	Convey("Given a stage error", t, func() {
		cause := errors.New("boom")
		err := error(&service.StageError{Stage: service.StageAvatar, Err: cause})

		Convey("Then it unwraps to its cause", func() {
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "avatar: boom")
		})

		Convey("Then plain errors carry no stage", func() {
			So(service.Stage(cause), ShouldEqual, "")
		})
	})
}
