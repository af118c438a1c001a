package seeder

func Defaults(jobs JobStore) []Seeder {
	return []Seeder{
		MockJobsSeeder{Jobs: jobs},
	}
}
