package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/matchday --output domain/matchday --outpkg matchdaymock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/rosterhistory --output domain/rosterhistory --outpkg rosterhistorymock --filename repository_mock.go
